package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LOCALPAINT_CONFIG", "LOCALPAINT_WIDTH", "LOCALPAINT_HEIGHT",
		"LOCALPAINT_BACKGROUND", "LOCALPAINT_REMOTE", "LOCALPAINT_REMOTE_PORT", "DEBUG",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "canvasState", cfg.StateKey)
	require.Equal(t, "canvas-image.png", cfg.ExportName)
	require.Equal(t, 800, cfg.Width)
	require.Equal(t, 600, cfg.Height)
	require.Equal(t, "white", cfg.Background)
	require.False(t, cfg.Remote.Enabled)
	require.Equal(t, DefaultRemotePort, cfg.Remote.Port)
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "paint.toml")
	data := `
width = 320
height = 240
background = "#fafafa"

[remote]
enabled = true
port = 9000
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 320, cfg.Width)
	require.Equal(t, 240, cfg.Height)
	require.Equal(t, "#fafafa", cfg.Background)
	require.True(t, cfg.Remote.Enabled)
	require.Equal(t, 9000, cfg.Remote.Port)
	require.Equal(t, "canvasState", cfg.StateKey)

	t.Setenv("LOCALPAINT_WIDTH", "100")
	t.Setenv("LOCALPAINT_REMOTE", "0")
	t.Setenv("DEBUG", "1")
	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, 100, cfg.Width)
	require.False(t, cfg.Remote.Enabled)
	require.True(t, cfg.Debug)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad width", env: map[string]string{"LOCALPAINT_WIDTH": "wide"}},
		{name: "zero height", env: map[string]string{"LOCALPAINT_HEIGHT": "0"}},
		{name: "bad background", env: map[string]string{"LOCALPAINT_BACKGROUND": "not-a-color"}},
		{name: "bad port", env: map[string]string{"LOCALPAINT_REMOTE": "true", "LOCALPAINT_REMOTE_PORT": "70000"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
