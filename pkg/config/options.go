package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptPlotWidthIn sets the width of specificity plots in inches.
func OptPlotWidthIn(f float64) Option {
	return func(c *Config) {
		if isValidFloat("Plot Width", f) {
			c.Plot.WidthIn = f
		}
	}
}

// OptPlotHeightIn sets the height of specificity plots in inches.
func OptPlotHeightIn(f float64) Option {
	return func(c *Config) {
		if isValidFloat("Plot Height", f) {
			c.Plot.HeightIn = f
		}
	}
}

// OptPlotCompletenessWidthIn sets the width of the completeness figure.
func OptPlotCompletenessWidthIn(f float64) Option {
	return func(c *Config) {
		if isValidFloat("Completeness Width", f) {
			c.Plot.CompletenessWidthIn = f
		}
	}
}

// OptPlotCompletenessHeightIn sets the height of the completeness figure.
func OptPlotCompletenessHeightIn(f float64) Option {
	return func(c *Config) {
		if isValidFloat("Completeness Height", f) {
			c.Plot.CompletenessHeightIn = f
		}
	}
}

// OptPlotJitterSigma sets the standard deviation of jitter noise.
func OptPlotJitterSigma(f float64) Option {
	return func(c *Config) {
		if isValidFloat("Jitter Sigma", f) {
			c.Plot.JitterSigma = f
		}
	}
}

// OptPlotFGSeed sets the jitter seed of the functional group specificity
// plot. Any value is accepted, zero included.
func OptPlotFGSeed(i uint64) Option {
	return func(c *Config) {
		c.Plot.FGSeed = i
	}
}

// OptPlotCarbonSeed sets the jitter seed of the carbon specificity plot.
func OptPlotCarbonSeed(i uint64) Option {
	return func(c *Config) {
		c.Plot.CarbonSeed = i
	}
}

// OptWithProgress turns progress bars on or off.
func OptWithProgress(b bool) Option {
	return func(c *Config) {
		c.WithProgress = b
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
