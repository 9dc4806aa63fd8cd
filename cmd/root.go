/*
Copyright © 2025 APRL-SSP authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aprl-ssp/ctypes/internal/iofs"
	"github.com/aprl-ssp/ctypes/internal/iologger"
	app "github.com/aprl-ssp/ctypes/pkg"
	"github.com/aprl-ssp/ctypes/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir   string
	opts      []config.Option
	cfg       *config.Config
	logCloser io.Closer
)

// bootstrap prepares directories, loads configuration and sets up logging
// before any command runs.
func bootstrap(cmd *cobra.Command, _ []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Flags have the last word
	cfg.Update(flagOptions(cmd))

	logDir := config.LogDir(cfg.HomeDir)
	if logCloser, err = iologger.Init(logDir, cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"version", app.Version,
	)

	return nil
}

func closeLog() {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}

// execute runs a command and exits with status 1 when it fails.
func execute(cmd *cobra.Command) {
	err := cmd.Execute()
	closeLog()
	if err != nil {
		os.Exit(1)
	}
}

// setVersion adds a -V/--version flag that prints version and build.
func setVersion(cmd *cobra.Command) {
	cmd.Version = fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build)
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.Flags().BoolP("version", "V", false, "version for "+cmd.Name())
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initDefaults(v)
	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

// initDefaults registers the values of config.New() with viper, so keys
// missing from an older or hand-edited config.yaml keep their defaults
// instead of unmarshaling to zero values.
func initDefaults(v *viper.Viper) {
	def := config.New()

	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("log.destination", def.Log.Destination)

	v.SetDefault("plot.width_in", def.Plot.WidthIn)
	v.SetDefault("plot.height_in", def.Plot.HeightIn)
	v.SetDefault("plot.completeness_width_in", def.Plot.CompletenessWidthIn)
	v.SetDefault("plot.completeness_height_in", def.Plot.CompletenessHeightIn)
	v.SetDefault("plot.jitter_sigma", def.Plot.JitterSigma)
	v.SetDefault("plot.fg_seed", def.Plot.FGSeed)
	v.SetDefault("plot.carbon_seed", def.Plot.CarbonSeed)

	v.SetDefault("with_progress", def.WithProgress)
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("CTYPES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Log configuration
	v.BindEnv("log.level", "CTYPES_LOG_LEVEL")
	v.BindEnv("log.format", "CTYPES_LOG_FORMAT")
	v.BindEnv("log.destination", "CTYPES_LOG_DESTINATION")

	// Plot configuration
	v.BindEnv("plot.width_in", "CTYPES_PLOT_WIDTH_IN")
	v.BindEnv("plot.height_in", "CTYPES_PLOT_HEIGHT_IN")
	v.BindEnv("plot.completeness_width_in", "CTYPES_PLOT_COMPLETENESS_WIDTH_IN")
	v.BindEnv("plot.completeness_height_in", "CTYPES_PLOT_COMPLETENESS_HEIGHT_IN")
	v.BindEnv("plot.jitter_sigma", "CTYPES_PLOT_JITTER_SIGMA")
	v.BindEnv("plot.fg_seed", "CTYPES_PLOT_FG_SEED")
	v.BindEnv("plot.carbon_seed", "CTYPES_PLOT_CARBON_SEED")

	// General configuration
	v.BindEnv("with_progress", "CTYPES_WITH_PROGRESS")

	v.AutomaticEnv()
}
