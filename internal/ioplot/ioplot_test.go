package ioplot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aprl-ssp/ctypes/internal/ioplot"
	"github.com/aprl-ssp/ctypes/pkg/config"
	"github.com/aprl-ssp/ctypes/pkg/errcode"
	"github.com/aprl-ssp/ctypes/pkg/table"
	"github.com/aprl-ssp/ctypes/pkg/validation"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records() []table.MatchRecord {
	rec := table.NewMatchRecord
	return []table.MatchRecord{
		rec("m1", "C1", "C", "alcohol", "1"),
		rec("m1", "C2", "C", "alcohol", "1"),
		rec("m1", "C2", "C", "ketone", "2"),
		rec("m1", "O3", "O", "alcohol", "1"),
		rec("m2", "C1", "C", "ketone", ""),
		rec("m2", "O2", "O", "ketone", "1"),
	}
}

func completeness(t *testing.T) *validation.Completeness {
	m := table.NewMatrix("compound", []string{"m1", "m2"}, []string{"C", "O"})
	m.Set(0, 0, 2)
	m.Set(0, 1, 1)
	m.Set(1, 0, 6)
	m.Set(1, 1, 1)
	truth, err := validation.NormalizeTruth(m)
	require.NoError(t, err)
	return validation.NewCompleteness(records(), truth)
}

func assertPDF(t *testing.T, path string) {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(content), 4)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestSaveCompleteness(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PDF rendering in short mode")
	}
	path := filepath.Join(t.TempDir(), "completeness.pdf")
	err := ioplot.SaveCompleteness(path, completeness(t), config.New().Plot)
	require.NoError(t, err)
	assertPDF(t, path)
}

func TestSaveCompletenessNoElements(t *testing.T) {
	c := &validation.Completeness{}
	path := filepath.Join(t.TempDir(), "completeness.pdf")
	err := ioplot.SaveCompleteness(path, c, config.New().Plot)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.PlotRenderError, gnErr.Code)
	assert.NoFileExists(t, path)
}

func TestSaveJitter(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PDF rendering in short mode")
	}
	elements := table.NewCategories("C", "O")
	cfg := config.New().Plot

	tests := []struct {
		msg string
		pts *validation.Points
		sty ioplot.JitterStyle
	}{
		{
			msg: "functional groups",
			pts: validation.FGSpecificity(records(), elements),
			sty: ioplot.JitterStyle{
				XLabel: "Element",
				YLabel: "Matched atom count per group",
				Seed:   1,
			},
		},
		{
			msg: "carbon",
			pts: validation.CarbonSpecificity(records(), elements),
			sty: ioplot.JitterStyle{
				XLabel:  "Group",
				YLabel:  "Matched C per group",
				RotateX: true,
				Seed:    2,
			},
		},
		{
			msg: "no points",
			pts: validation.CarbonSpecificity(records(), table.NewCategories("O")),
			sty: ioplot.JitterStyle{XLabel: "Group", YLabel: "Matched C per group"},
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "jitter.pdf")
			err := ioplot.SaveJitter(path, v.pts, v.sty, cfg)
			require.NoError(t, err)
			assertPDF(t, path)
		})
	}
}

func TestSaveJitterBadPath(t *testing.T) {
	pts := validation.FGSpecificity(records(), table.NewCategories("C"))
	path := filepath.Join(t.TempDir(), "missing", "jitter.pdf")
	err := ioplot.SaveJitter(path, pts, ioplot.JitterStyle{}, config.New().Plot)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.PlotSaveError, gnErr.Code)
}
