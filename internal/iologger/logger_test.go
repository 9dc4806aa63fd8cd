package iologger

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aprl-ssp/ctypes/pkg/config"
	"github.com/aprl-ssp/ctypes/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		res   slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, parseLevel(v.input), v.input)
	}
}

func TestInitFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	dir := t.TempDir()
	logPath := filepath.Join(dir, LogFile)
	err := os.WriteFile(logPath, []byte("old run\n"), 0644)
	require.NoError(t, err)

	cfg := config.New().Log
	cfg.Level = "debug"
	closer, err := Init(dir, cfg)
	require.NoError(t, err)

	slog.Debug("Matrices written", "files", 3)
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "old run",
		"log file is truncated on start")

	line := strings.TrimSpace(string(content))
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &rec))
	assert.Equal(t, "Matrices written", rec["msg"])
	assert.Equal(t, 3.0, rec["files"])
}

func TestInitFileError(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	cfg := config.New().Log

	_, err := Init(dir, cfg)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
}

func TestInitStderr(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	cfg := config.New().Log
	cfg.Destination = "stderr"
	cfg.Format = "text"

	closer, err := Init("", cfg)
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}
