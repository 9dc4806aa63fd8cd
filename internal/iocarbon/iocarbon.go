// Package iocarbon implements MatrixBuilder interface. It reads an atom
// full table, derives the carbon-type matrices and writes them as CSV
// files.
package iocarbon

import (
	"context"
	"log/slog"
	"time"

	"github.com/aprl-ssp/ctypes/internal/iofs"
	"github.com/aprl-ssp/ctypes/internal/iotable"
	"github.com/aprl-ssp/ctypes/pkg/carbon"
	"github.com/aprl-ssp/ctypes/pkg/config"
	"github.com/aprl-ssp/ctypes/pkg/ctypes"
	"github.com/aprl-ssp/ctypes/pkg/table"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
)

type builder struct {
	cfg *config.Config
}

// New creates a MatrixBuilder.
func New(cfg *config.Config) ctypes.MatrixBuilder {
	return &builder{cfg: cfg}
}

// Paths returns the X, Y and Theta file names for an output prefix.
func Paths(prefix string) []string {
	return []string{
		prefix + "_carbontypes_X.csv",
		prefix + "_carbontypes_Y.csv",
		prefix + "_carbontypes_Theta.csv",
	}
}

// Build reads the match table, computes X, Y and Theta and writes them
// next to the output prefix.
func (b *builder) Build(
	ctx context.Context,
	inputPath, prefix string,
) ([]string, error) {
	start := time.Now()
	slog.Info("Generating carbon types", "input", inputPath, "prefix", prefix)

	recs, err := iotable.ReadMatchTable(inputPath, b.cfg.WithProgress)
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, CanceledError(err)
	}

	ms := carbon.Build(recs)
	atoms := ms.Atoms.Len()
	types, _ := ms.Theta.Dims()
	compounds, groups := ms.X.Dims()
	slog.Info("Carbon types found",
		"compounds", compounds,
		"groups", groups,
		"carbon_atoms", atoms,
		"carbon_types", types,
	)
	if atoms == 0 {
		slog.Warn("No carbon atoms in the input", "input", inputPath)
		gn.Warn("No carbon atoms found in <em>%s</em>", inputPath)
	}
	if err = ctx.Err(); err != nil {
		return nil, CanceledError(err)
	}

	if err = iofs.EnsureOutputDir(prefix); err != nil {
		return nil, err
	}
	paths := Paths(prefix)
	for i, m := range []*table.Matrix{ms.X, ms.Y, ms.Theta} {
		if err = iotable.WriteMatrix(paths[i], m); err != nil {
			return nil, err
		}
	}

	dur := time.Since(start)
	slog.Info("Carbon types generated",
		"duration", gnfmt.TimeString(dur.Seconds()))
	gn.Info(
		"Found <em>%s</em> carbon types among <em>%s</em> carbon atoms "+
			"of %s compounds in %s",
		humanize.Comma(int64(types)),
		humanize.Comma(int64(atoms)),
		humanize.Comma(int64(compounds)),
		gnfmt.TimeString(dur.Seconds()),
	)
	return paths, nil
}
