// Package config provides configuration management for ctypes.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Log: level, format, destination
//   - Plot: width_in, height_in, completeness_width_in,
//     completeness_height_in, jitter_sigma, fg_seed, carbon_seed
//   - General: with_progress
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use CTYPES_ prefix with underscores for nesting:
//
//	CTYPES_LOG_LEVEL=info
//	CTYPES_PLOT_JITTER_SIGMA=0.05
//	CTYPES_PLOT_FG_SEED=1
//	CTYPES_WITH_PROGRESS=true
package config

// Config represents the complete ctypes configuration.
type Config struct {
	// Log contains settings of the application log.
	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Plot contains sizes and jitter settings of validation plots.
	Plot PlotConfig `mapstructure:"plot" yaml:"plot"`

	// WithProgress shows progress bars while large tables are parsed.
	WithProgress bool `mapstructure:"with_progress" yaml:"with_progress"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// PlotConfig describes the figures of the validation report.
// Sizes are in inches.
type PlotConfig struct {
	// WidthIn is the width of specificity plots.
	WidthIn float64 `mapstructure:"width_in" yaml:"width_in"`
	// HeightIn is the height of specificity plots.
	HeightIn float64 `mapstructure:"height_in" yaml:"height_in"`
	// CompletenessWidthIn is the width of the completeness figure.
	CompletenessWidthIn float64 `mapstructure:"completeness_width_in" yaml:"completeness_width_in"`
	// CompletenessHeightIn is the height of the completeness figure.
	CompletenessHeightIn float64 `mapstructure:"completeness_height_in" yaml:"completeness_height_in"`
	// JitterSigma is the standard deviation of the Gaussian noise added to
	// points of specificity plots.
	JitterSigma float64 `mapstructure:"jitter_sigma" yaml:"jitter_sigma"`
	// FGSeed seeds the jitter of the functional group specificity plot.
	FGSeed uint64 `mapstructure:"fg_seed" yaml:"fg_seed"`
	// CarbonSeed seeds the jitter of the carbon specificity plot.
	CarbonSeed uint64 `mapstructure:"carbon_seed" yaml:"carbon_seed"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		Plot: PlotConfig{
			WidthIn:              6.4,
			HeightIn:             4.8,
			CompletenessWidthIn:  12,
			CompletenessHeightIn: 5,
			JitterSigma:          0.05,
			FGSeed:               1,
			CarbonSeed:           2,
		},
	}

	return res
}
