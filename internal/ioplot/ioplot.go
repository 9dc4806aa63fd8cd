// Package ioplot renders validation views as PDF figures.
package ioplot

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"

	"github.com/aprl-ssp/ctypes/pkg/config"
	"github.com/aprl-ssp/ctypes/pkg/validation"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

// Figure labels of the completeness plot.
const (
	TrueCountLabel    = "True atom count by compound"
	MatchedCountLabel = "Matched atom count by compound"
)

var (
	lineColor  = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	pointColor = color.RGBA{R: 255, G: 127, B: 14, A: 255}

	errNoElements = errors.New("ground truth has no element columns")
)

// JitterStyle describes the labels and layout of a specificity plot.
type JitterStyle struct {
	XLabel, YLabel string
	// RotateX turns category labels a quarter turn and leaves room for them
	// under the axis.
	RotateX bool
	// Seed seeds the jitter noise.
	Seed uint64
}

// SaveCompleteness draws one subplot per element side by side: true
// atom counts against matched atom counts with a y=x reference line.
func SaveCompleteness(
	path string,
	c *validation.Completeness,
	cfg config.PlotConfig,
) error {
	figure := "completeness"
	n := len(c.Elements)
	if n == 0 {
		return RenderError(figure, errNoElements)
	}

	plots := make([]*plot.Plot, n)
	for i, el := range c.Elements {
		x, y := c.Points(el)
		p, err := completenessPlot(el, x, y)
		if err != nil {
			return RenderError(figure, err)
		}
		plots[i] = p
	}

	w := vg.Length(cfg.CompletenessWidthIn) * vg.Inch
	h := vg.Length(cfg.CompletenessHeightIn) * vg.Inch
	pdf := vgpdf.New(w, h)
	dc := draw.New(pdf)

	tiles := draw.Tiles{
		Rows:      1,
		Cols:      n,
		PadX:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 4,
		PadRight:  vg.Millimeter * 4,
		PadLeft:   0.08 * w,
		PadBottom: 0.12 * h,
	}
	canvases := plot.Align([][]*plot.Plot{plots}, tiles, dc)
	for i, p := range plots {
		p.Draw(canvases[0][i])
	}

	sty := figureTextStyle()
	dc.FillText(sty, vg.Point{X: 0.5 * w, Y: 0.04 * h}, TrueCountLabel)
	sty.Rotation = math.Pi / 2
	dc.FillText(sty, vg.Point{X: 0.04 * w, Y: 0.5 * h}, MatchedCountLabel)

	return writePDF(path, pdf)
}

func completenessPlot(element string, x, y []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = element

	frame := validation.NewFrame(validation.MaxOf(x))
	lim := plotter.XYs{{X: frame.Min, Y: frame.Min}, {X: frame.Max, Y: frame.Max}}
	line, err := plotter.NewLine(lim)
	if err != nil {
		return nil, err
	}
	line.Color = lineColor

	sc, err := plotter.NewScatter(xys(x, y))
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Color = pointColor

	p.Add(line, sc)
	p.X.Min, p.X.Max = frame.Min, frame.Max
	p.Y.Min, p.Y.Max = frame.Min, frame.Max
	ticks := numberTicks(frame.Ticks)
	p.X.Tick.Marker = ticks
	p.Y.Tick.Marker = ticks
	return p, nil
}

// SaveJitter draws a categorical scatter with jittered points.
func SaveJitter(
	path string,
	pts *validation.Points,
	sty JitterStyle,
	cfg config.PlotConfig,
) error {
	figure := sty.XLabel + " specificity"

	p := plot.New()
	p.X.Label.Text = sty.XLabel
	p.Y.Label.Text = sty.YLabel

	xs, ys := pts.Jittered(cfg.JitterSigma, sty.Seed)
	sc, err := plotter.NewScatter(xys(xs, ys))
	if err != nil {
		return RenderError(figure, err)
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Color = pointColor
	p.Add(sc)

	var xticks plot.ConstantTicks
	for i, v := range pts.XTicks() {
		xticks = append(xticks, plot.Tick{Value: v, Label: pts.Categories.Label(i)})
	}
	p.X.Tick.Marker = xticks
	p.Y.Tick.Marker = numberTicks(pts.YTicks())

	// keep every category tick inside the axis
	if n := pts.Categories.Len(); n > 0 {
		p.X.Min = min(p.X.Min, -0.5)
		p.X.Max = max(p.X.Max, float64(n)-0.5)
	}

	w := vg.Length(cfg.WidthIn) * vg.Inch
	h := vg.Length(cfg.HeightIn) * vg.Inch
	pdf := vgpdf.New(w, h)
	dc := draw.New(pdf)

	if sty.RotateX {
		p.X.Tick.Label.Rotation = math.Pi / 2
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
		dc = draw.Crop(dc, 0, 0, 0.05*h, 0)
	}

	p.Draw(dc)
	return writePDF(path, pdf)
}

func figureTextStyle() text.Style {
	return text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, 12),
		XAlign:  draw.XCenter,
		YAlign:  draw.YCenter,
		Handler: plot.DefaultTextHandler,
	}
}

func numberTicks(vals []float64) plot.ConstantTicks {
	res := make(plot.ConstantTicks, len(vals))
	for i, v := range vals {
		res[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)}
	}
	return res
}

func xys(x, y []float64) plotter.XYs {
	res := make(plotter.XYs, len(x))
	for i := range x {
		res[i].X = x[i]
		res[i].Y = y[i]
	}
	return res
}

func writePDF(path string, pdf *vgpdf.Canvas) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return SaveError(path, err)
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = SaveError(path, e)
		}
	}()

	if _, err = pdf.WriteTo(f); err != nil {
		return SaveError(path, fmt.Errorf("pdf: %w", err))
	}
	return nil
}
