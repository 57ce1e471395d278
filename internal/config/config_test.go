package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Rule != "midpoint" {
		t.Errorf("expected rule midpoint, got %s", cfg.Rule)
	}
	if cfg.Integrand != "pi" {
		t.Errorf("expected integrand pi, got %s", cfg.Integrand)
	}
	if cfg.MinWorkers < 1 {
		t.Error("min workers should be positive")
	}
	if len(cfg.Steps) == 0 {
		t.Error("default steps list should not be empty")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	body := "rule: trapezoid\nintegrand: ln2\nsteps: [500, 1000]\nmax_workers: 2\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Rule != "trapezoid" {
		t.Errorf("expected rule trapezoid, got %s", cfg.Rule)
	}
	if cfg.Integrand != "ln2" {
		t.Errorf("expected integrand ln2, got %s", cfg.Integrand)
	}
	if len(cfg.Steps) != 2 || cfg.Steps[0] != 500 {
		t.Errorf("unexpected steps: %v", cfg.Steps)
	}
	if cfg.MaxWorkers != 2 {
		t.Errorf("expected max workers 2, got %d", cfg.MaxWorkers)
	}
	// Unset fields keep defaults.
	if cfg.MinWorkers != DefaultMinWorkers {
		t.Errorf("expected default min workers, got %d", cfg.MinWorkers)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("expected default output, got %s", cfg.Output)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")

	cfg := DefaultConfig()
	cfg.Steps = []int64{123, 456}
	cfg.MaxWorkers = 3

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if back.MaxWorkers != 3 || len(back.Steps) != 2 || back.Steps[1] != 456 {
		t.Errorf("round trip lost fields: %+v", back)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Steps) != 3 || cfg.Steps[2] != 3000000000 {
		t.Errorf("unexpected classic steps: %v", cfg.Steps)
	}
	if cfg.MaxWorkers != 50 {
		t.Errorf("expected max workers 50, got %d", cfg.MaxWorkers)
	}
	if cfg.Integrand != "pi" {
		t.Errorf("expected integrand pi, got %s", cfg.Integrand)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("preset names not sorted: %v", names)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Config)
	}{
		{"zero min workers", func(c *Config) { c.MinWorkers = 0 }},
		{"max below min", func(c *Config) { c.MinWorkers = 4; c.MaxWorkers = 2 }},
		{"empty steps", func(c *Config) { c.Steps = nil }},
		{"steps below workers", func(c *Config) { c.Steps = []int64{4}; c.MaxWorkers = 8 }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mut(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}
