package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ServerURL != "ws://localhost:7860/ws" {
		t.Errorf("ServerURL = %q", cfg.ServerURL)
	}
	if !cfg.HasMuteControl() {
		t.Error("mute control should default to enabled")
	}
	if cfg.ReconnectAttempts() != 5 {
		t.Errorf("ReconnectAttempts() = %d, want 5", cfg.ReconnectAttempts())
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	content := `
server_url = "ws://assistant.local:7860/ws/"
icons = "nerd"

[panel]
collapsed = true
mute_control = false

[connect]
reconnect_attempts = 2
reconnect_delay_ms = 250
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ServerURL != "ws://assistant.local:7860/ws" {
		t.Errorf("ServerURL = %q, want trailing slash trimmed", cfg.ServerURL)
	}
	if cfg.Icons != "nerd" {
		t.Errorf("Icons = %q", cfg.Icons)
	}
	if !cfg.Panel.Collapsed {
		t.Error("Panel.Collapsed not loaded")
	}
	if cfg.HasMuteControl() {
		t.Error("mute_control=false not honored")
	}
	if cfg.ReconnectAttempts() != 2 {
		t.Errorf("ReconnectAttempts() = %d, want 2", cfg.ReconnectAttempts())
	}
	if cfg.ReconnectDelay().Milliseconds() != 250 {
		t.Errorf("ReconnectDelay() = %v, want 250ms", cfg.ReconnectDelay())
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv(EnvServerURL, "ws://override:9000/ws")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ServerURL != "ws://override:9000/ws" {
		t.Errorf("ServerURL = %q, want env override", cfg.ServerURL)
	}
}
