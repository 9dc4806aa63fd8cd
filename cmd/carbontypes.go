package cmd

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aprl-ssp/ctypes/internal/iocarbon"
	"github.com/aprl-ssp/ctypes/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getCarbonTypesCmd returns the generate_carbontypes command.
func getCarbonTypesCmd() *cobra.Command {
	var input, prefix string

	carbonCmd := &cobra.Command{
		Use:   "generate_carbontypes",
		Short: "Generate carbon-type matrices from an atom full table",
		Long: `Generate the X, Y and Theta matrices of carbon types from
the atom full table of a substructure search.

Carbon atoms with the same vector of functional group matches share a
carbon type, labeled like "(1, 0)". Three CSV files are written:
  {prefix}_carbontypes_X.csv      compounds by groups
  {prefix}_carbontypes_Y.csv      compounds by carbon types
  {prefix}_carbontypes_Theta.csv  carbon types by groups

Example usage:
  generate_carbontypes -i apinene_MCMgroups_atomfulltable.csv -o apinene`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runCarbonTypes(cmd.Context(), input, prefix)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	carbonCmd.Flags().StringVarP(
		&input, "inputfile", "i", "",
		"atom full table of a substructure search; csv format",
	)
	carbonCmd.Flags().StringVarP(
		&prefix, "outputprefix", "o", config.DefaultPrefix,
		"output prefix",
	)
	addCommonFlags(carbonCmd)
	setVersion(carbonCmd)

	return carbonCmd
}

func runCarbonTypes(ctx context.Context, input, prefix string) error {
	if input == "" {
		gn.Warn("Use <em>-i</em> to give the atom full table")
		err := errors.New("input file is not given")
		slog.Error("Missing flag", "flag", "inputfile", "error", err)
		return err
	}
	b := iocarbon.New(cfg)
	paths, err := b.Build(ctx, input, prefix)
	if err != nil {
		slog.Error("Cannot generate carbon types", "error", err)
		return err
	}

	for _, v := range paths {
		gn.Info("Wrote <em>%s</em>", v)
	}
	return nil
}

// ExecuteCarbonTypes runs generate_carbontypes. It is called by main.main().
func ExecuteCarbonTypes() {
	execute(getCarbonTypesCmd())
}
