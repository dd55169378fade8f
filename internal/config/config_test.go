package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/utkarsh5026/pollme/future"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "playground.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Workers != 10 || cfg.Message != "Hello, world!" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.Countdowns) != 2 || cfg.Countdowns[0] != 10 || cfg.Countdowns[1] != 20 {
		t.Errorf("unexpected countdowns: %v", cfg.Countdowns)
	}
}

func TestLoad_Overlay(t *testing.T) {
	path := writeConfig(t, `
workers = 4
countdowns = [3, 5, 2]
wake_mode = "park"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Workers)
	}
	if len(cfg.Countdowns) != 3 {
		t.Errorf("expected 3 countdowns, got %v", cfg.Countdowns)
	}
	if cfg.Message != "Hello, world!" {
		t.Errorf("expected default message to survive, got %q", cfg.Message)
	}
	if mode, _ := cfg.Mode(); mode != future.WakePark {
		t.Errorf("expected park mode, got %v", mode)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero workers", "workers = 0"},
		{"bad wake mode", `wake_mode = "spin"`},
		{"unknown key", "threads = 3"},
		{"negative rate", "start_rate = -1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
