package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "ctypes"

	// DefaultPrefix is the output prefix used when none is given.
	DefaultPrefix = "output"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/ctypes by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/ctypes/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/ctypes/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
