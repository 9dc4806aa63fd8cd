package cmd

import (
	"github.com/aprl-ssp/ctypes/pkg/config"
	"github.com/spf13/cobra"
)

type funcFlag func(cmd *cobra.Command) []config.Option

// flagOptions collects options from flags set on the command line.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	for _, f := range []funcFlag{progressFlag, logLevelFlag} {
		res = append(res, f(cmd)...)
	}
	return res
}

func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("progress", false, "show progress while reading tables")
	cmd.Flags().String("log-level", "", "log level: debug, info, warn or error")
}

func progressFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("progress") {
		return nil
	}
	b, _ := cmd.Flags().GetBool("progress")
	return []config.Option{config.OptWithProgress(b)}
}

func logLevelFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("log-level") {
		return nil
	}
	s, _ := cmd.Flags().GetString("log-level")
	return []config.Option{config.OptLogLevel(s)}
}
