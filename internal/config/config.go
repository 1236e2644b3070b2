package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"LocalPaint/internal/state"
)

const (
	DefaultAppID      = "io.localpaint.app"
	DefaultStateKey   = "canvasState"
	DefaultExportName = "canvas-image.png"
	DefaultRemotePort = 8888
)

// Config holds everything the painter needs at startup.
type Config struct {
	// AppID scopes the fyne preferences, and with them the persisted snapshot.
	AppID string `toml:"app_id"`
	// Width and Height are the fixed raster size in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Background is the blank color of the surface; the eraser paints with it.
	Background string `toml:"background"`
	// StateKey is the preferences key the snapshot is stored under.
	StateKey string `toml:"state_key"`
	// ExportName is the filename offered when saving the image.
	ExportName string `toml:"export_name"`
	Debug      bool   `toml:"debug"`

	Remote RemoteConfig `toml:"remote"`
}

// RemoteConfig controls the optional websocket input endpoint.
type RemoteConfig struct {
	Enabled   bool `toml:"enabled"`
	Port      int  `toml:"port"`
	Advertise bool `toml:"advertise"`
}

// Default returns the configuration used when nothing else is given.
func Default() *Config {
	return &Config{
		AppID:      DefaultAppID,
		Width:      800,
		Height:     600,
		Background: "white",
		StateKey:   DefaultStateKey,
		ExportName: DefaultExportName,
		Remote: RemoteConfig{
			Port:      DefaultRemotePort,
			Advertise: true,
		},
	}
}

// Load builds the configuration from defaults, an optional TOML file and the
// environment, in that order. An empty path falls back to LOCALPAINT_CONFIG.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("LOCALPAINT_CONFIG")
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("LOCALPAINT_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid LOCALPAINT_WIDTH %q: %w", v, err)
		}
		c.Width = n
	}
	if v := os.Getenv("LOCALPAINT_HEIGHT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid LOCALPAINT_HEIGHT %q: %w", v, err)
		}
		c.Height = n
	}
	if v := os.Getenv("LOCALPAINT_BACKGROUND"); v != "" {
		c.Background = v
	}
	if v := os.Getenv("LOCALPAINT_REMOTE"); v != "" {
		c.Remote.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("LOCALPAINT_REMOTE_PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid LOCALPAINT_REMOTE_PORT %q: %w", v, err)
		}
		c.Remote.Port = n
	}
	if v := os.Getenv("DEBUG"); v == "true" || v == "1" {
		c.Debug = true
	}
	return nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", c.Width, c.Height)
	}
	if strings.TrimSpace(c.StateKey) == "" {
		return fmt.Errorf("state_key must not be empty")
	}
	if strings.TrimSpace(c.ExportName) == "" {
		return fmt.Errorf("export_name must not be empty")
	}
	if _, ok := state.ParseColor(c.Background); !ok {
		return fmt.Errorf("invalid background color %q", c.Background)
	}
	if c.Remote.Enabled && (c.Remote.Port <= 0 || c.Remote.Port > 65535) {
		return fmt.Errorf("invalid remote port %d", c.Remote.Port)
	}
	return nil
}
