// Package iotesting provides shared test utilities for packages that read
// and write files.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"
)

// PineneTable is an atom full table of a pinene-like compound: two carbon
// atoms match OH and miss CO, an oxygen atom matches OH.
const PineneTable = `compound,atom,type,group,match
pinene,C1,C,OH,1
pinene,C1,C,CO,
pinene,C2,C,OH,1
pinene,C2,C,CO,
pinene,O3,O,OH,1
`

// SetupTempHome creates a temporary home directory for a test and points
// HOME to it, so config and log files never touch the real ones in
// ~/.config/ctypes and ~/.local/share/ctypes. The directory and the
// environment are restored when the test finishes.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    home := iotesting.SetupTempHome(t)
//	    // config.ConfigDir(home) is now a safe place to write to
//	}
func SetupTempHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

// WriteFile writes content to a file in dir and returns the file path.
//
// Usage:
//
//	path := iotesting.WriteFile(t, t.TempDir(), "full.csv", iotesting.PineneTable)
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
