package ctypes

import (
	"context"
)

// MatrixBuilder derives carbon-type matrices from a substructure match
// table. Config is provided during construction.
type MatrixBuilder interface {
	// Build reads the atom full table at inputPath and writes
	// {prefix}_carbontypes_X.csv, {prefix}_carbontypes_Y.csv and
	// {prefix}_carbontypes_Theta.csv. It returns the paths of the written
	// files in that order.
	Build(ctx context.Context, inputPath, prefix string) ([]string, error)
}

// Validator compares substructure matches against ground-truth atom counts
// and renders the comparison as PDF plots. Config is provided during
// construction.
type Validator interface {
	// Validate reads the atom full table and the common atoms table and
	// writes {prefix}_validation_completeness.pdf,
	// {prefix}_validation_specificity_FG.pdf and
	// {prefix}_validation_specificity_carbon.pdf. It returns the paths
	// of the written files in that order.
	Validate(
		ctx context.Context,
		fullTablePath, atomsPath, prefix string,
	) ([]string, error)
}
