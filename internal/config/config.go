// Package config loads client configuration from TOML files and the
// environment.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all client settings.
type Config struct {
	ServerURL string `koanf:"server_url"` // websocket endpoint of the assistant server
	Icons     string `koanf:"icons"`      // "nerd", "unicode", or "none"
	LogLevel  string `koanf:"log_level"`  // "debug", "info", "warn", "error"

	Panel   PanelConfig   `koanf:"panel"`
	Connect ConnectConfig `koanf:"connect"`
}

// PanelConfig holds bot audio panel settings.
type PanelConfig struct {
	Collapsed   bool  `koanf:"collapsed"`    // start in collapsed mode
	MuteControl *bool `koanf:"mute_control"` // render a mute control (default: true)
}

// ConnectConfig holds connection and retry settings.
type ConnectConfig struct {
	ReconnectAttempts int `koanf:"reconnect_attempts"` // per-disconnect retry budget (default: 5)
	ReconnectDelayMS  int `koanf:"reconnect_delay_ms"` // base retry delay (default: 1000)
}

// EnvServerURL overrides server_url when set, typically via a .env file.
const EnvServerURL = "PCA_SERVER_URL"

// Load reads config files in priority order (last wins), then applies
// environment overrides.
func Load() (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		ServerURL: "ws://localhost:7860/ws",
		Icons:     "unicode",
		LogLevel:  "info",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if url := os.Getenv(EnvServerURL); url != "" {
		cfg.ServerURL = url
	}
	cfg.ServerURL = strings.TrimSuffix(cfg.ServerURL, "/")

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/pipecat-assistant/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "pipecat-assistant", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// HasMuteControl returns whether the mute control is enabled, defaulting to
// true.
func (c *Config) HasMuteControl() bool {
	return c.Panel.MuteControl == nil || *c.Panel.MuteControl
}

// ReconnectAttempts returns the retry budget with defaults applied.
func (c *Config) ReconnectAttempts() int {
	if c.Connect.ReconnectAttempts <= 0 {
		return 5
	}
	return c.Connect.ReconnectAttempts
}

// ReconnectDelay returns the base retry delay with defaults applied.
func (c *Config) ReconnectDelay() time.Duration {
	if c.Connect.ReconnectDelayMS <= 0 {
		return time.Second
	}
	return time.Duration(c.Connect.ReconnectDelayMS) * time.Millisecond
}
