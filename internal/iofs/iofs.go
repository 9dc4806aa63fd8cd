// Package iofs prepares the directories and files ctypes keeps under the
// user's home directory, and the directories of output files.
package iofs

import (
	"os"
	"path/filepath"

	"github.com/aprl-ssp/ctypes/pkg/config"
	"github.com/aprl-ssp/ctypes/pkg/templates"
)

// EnsureDirs creates config and log directories if they are missing.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

// EnsureOutputDir creates the directory of an output prefix, so
// "results/run1" writes into an existing "results" directory.
func EnsureOutputDir(prefix string) error {
	dir := filepath.Dir(prefix)
	if dir == "." || dir == "" {
		return nil
	}
	return touchDir(dir)
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml unless the user already
// has one.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(templates.ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}
