package cmd

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aprl-ssp/ctypes/internal/iovalidate"
	"github.com/aprl-ssp/ctypes/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getValidationCmd returns the validation_triple command.
func getValidationCmd() *cobra.Command {
	var fullTable, atoms, prefix string

	validationCmd := &cobra.Command{
		Use:   "validation_triple",
		Short: "Validate substructure matches against true atom counts",
		Long: `Compare substructure matches with true atom counts of every
compound and plot three reports:
  {prefix}_validation_completeness.pdf        matched vs true atoms per element
  {prefix}_validation_specificity_FG.pdf      matched groups per atom
  {prefix}_validation_specificity_carbon.pdf  carbon atoms per matched group

Example usage:
  validation_triple -f apinene_MCMgroups_atomfulltable.csv \
    -a apinene_commonatoms.csv -o apinene`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runValidation(cmd.Context(), fullTable, atoms, prefix)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	validationCmd.Flags().StringVarP(
		&fullTable, "atomfulltable", "f", "",
		"atom full table of a substructure search; csv format",
	)
	validationCmd.Flags().StringVarP(
		&atoms, "atomcommon", "a", "",
		"true atom counts by compound from a common atoms search; csv format",
	)
	validationCmd.Flags().StringVarP(
		&prefix, "outputprefix", "o", config.DefaultPrefix,
		"output prefix",
	)
	addCommonFlags(validationCmd)
	setVersion(validationCmd)

	return validationCmd
}

func runValidation(ctx context.Context, fullTable, atoms, prefix string) error {
	if fullTable == "" || atoms == "" {
		gn.Warn("Use <em>-f</em> and <em>-a</em> to give both tables")
		err := errors.New("both atom full table and common atoms table are required")
		slog.Error("Missing flag", "error", err)
		return err
	}
	v := iovalidate.New(cfg)
	paths, err := v.Validate(ctx, fullTable, atoms, prefix)
	if err != nil {
		slog.Error("Cannot validate matches", "error", err)
		return err
	}

	for _, p := range paths {
		gn.Info("Wrote <em>%s</em>", p)
	}
	return nil
}

// ExecuteValidation runs validation_triple. It is called by main.main().
func ExecuteValidation() {
	execute(getValidationCmd())
}
