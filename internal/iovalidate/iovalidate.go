// Package iovalidate implements Validator interface. It compares
// substructure matches with ground-truth atom counts and renders three
// PDF reports: atom completeness, functional group specificity and carbon
// specificity.
package iovalidate

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aprl-ssp/ctypes/internal/iofs"
	"github.com/aprl-ssp/ctypes/internal/ioplot"
	"github.com/aprl-ssp/ctypes/internal/iotable"
	"github.com/aprl-ssp/ctypes/pkg/config"
	"github.com/aprl-ssp/ctypes/pkg/ctypes"
	"github.com/aprl-ssp/ctypes/pkg/table"
	"github.com/aprl-ssp/ctypes/pkg/validation"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
)

// Axis labels of the specificity plots.
const (
	ElementLabel   = "Element"
	FGCountLabel   = "Matched atom count per group"
	GroupLabel     = "Group"
	CarbonCntLabel = "Matched C per group"
)

type validator struct {
	cfg *config.Config
}

// New creates a Validator.
func New(cfg *config.Config) ctypes.Validator {
	return &validator{cfg: cfg}
}

// Paths returns the completeness, functional group specificity and
// carbon specificity file names for an output prefix.
func Paths(prefix string) []string {
	return []string{
		prefix + "_validation_completeness.pdf",
		prefix + "_validation_specificity_FG.pdf",
		prefix + "_validation_specificity_carbon.pdf",
	}
}

// Validate reads both tables, builds the three views and saves their
// plots.
func (v *validator) Validate(
	ctx context.Context,
	fullTablePath, atomsPath, prefix string,
) ([]string, error) {
	start := time.Now()
	slog.Info("Validating matches",
		"fulltable", fullTablePath, "atoms", atomsPath, "prefix", prefix)

	counts, err := iotable.ReadAtomCounts(atomsPath)
	if err != nil {
		return nil, err
	}
	truth, err := validation.NormalizeTruth(counts)
	if err != nil {
		return nil, TruthError(atomsPath, err)
	}
	if len(truth.Cols()) == 0 {
		return nil, TruthError(atomsPath, errors.New("no element columns"))
	}

	recs, err := iotable.ReadMatchTable(fullTablePath, v.cfg.WithProgress)
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, CanceledError(err)
	}

	elements := table.NewCategories(truth.Cols()...)
	compl := validation.NewCompleteness(recs, truth)
	fg := validation.FGSpecificity(recs, elements)
	cv := validation.CarbonSpecificity(recs, elements)
	slog.Info("Validation views built",
		"compounds", len(truth.Rows()),
		"elements", elements.Len(),
		"atoms", fg.Len(),
		"carbon_matches", cv.Len(),
	)
	if err = ctx.Err(); err != nil {
		return nil, CanceledError(err)
	}

	if err = iofs.EnsureOutputDir(prefix); err != nil {
		return nil, err
	}
	paths := Paths(prefix)
	plotCfg := v.cfg.Plot

	if err = ioplot.SaveCompleteness(paths[0], compl, plotCfg); err != nil {
		return nil, err
	}

	fgStyle := ioplot.JitterStyle{
		XLabel: ElementLabel,
		YLabel: FGCountLabel,
		Seed:   plotCfg.FGSeed,
	}
	if err = ioplot.SaveJitter(paths[1], fg, fgStyle, plotCfg); err != nil {
		return nil, err
	}

	cStyle := ioplot.JitterStyle{
		XLabel:  GroupLabel,
		YLabel:  CarbonCntLabel,
		RotateX: true,
		Seed:    plotCfg.CarbonSeed,
	}
	if err = ioplot.SaveJitter(paths[2], cv, cStyle, plotCfg); err != nil {
		return nil, err
	}

	dur := time.Since(start)
	slog.Info("Validation plots saved",
		"files", len(paths),
		"duration", gnfmt.TimeString(dur.Seconds()),
	)
	gn.Info(
		"Validated <em>%s</em> atoms of %s compounds in %s",
		humanize.Comma(int64(fg.Len())),
		humanize.Comma(int64(len(truth.Rows()))),
		gnfmt.TimeString(dur.Seconds()),
	)
	return paths, nil
}
