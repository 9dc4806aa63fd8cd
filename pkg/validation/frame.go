package validation

import (
	"gonum.org/v1/gonum/floats"
)

// Frame describes the square axes of a completeness subplot.
type Frame struct {
	// Min and Max are the limits of both axes.
	Min, Max float64
	// Ticks are the tick positions of both axes.
	Ticks []float64
}

// NewFrame creates the frame for data ranging from 0 to max. Ticks step
// by 1 below 5 and by 2 otherwise, and the limits leave a 4% margin on
// both sides.
func NewFrame(max float64) Frame {
	step := 1.0
	if max >= 5 {
		step = 2
	}
	pad := 0.04 * max
	return Frame{
		Min:   -pad,
		Max:   max + pad,
		Ticks: arange(0, max+1, step),
	}
}

// MaxOf returns the largest value of xs, or 0 when xs is empty.
func MaxOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return floats.Max(xs)
}

// YTicks returns integer tick positions from the smallest to the largest
// value.
func (p *Points) YTicks() []float64 {
	if len(p.Values) == 0 {
		return nil
	}
	return arange(floats.Min(p.Values), floats.Max(p.Values)+1, 1)
}

// XTicks returns the tick position of every category.
func (p *Points) XTicks() []float64 {
	return arange(0, float64(p.Categories.Len()), 1)
}

// arange returns start, start+step, ... up to, but not including, stop.
func arange(start, stop, step float64) []float64 {
	var res []float64
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v >= stop {
			break
		}
		res = append(res, v)
	}
	return res
}
