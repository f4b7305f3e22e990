package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded default differs from DefaultConfig():\n got %+v\nwant %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, `
simulation:
  tick_rate: 30
  seed: 1234
log:
  level: debug
pack: ./levels/hard.yaml
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Simulation.TickRate != 30 || cfg.Simulation.Seed != 1234 {
		t.Errorf("simulation = %+v", cfg.Simulation)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Simulation.MaxAttempts != DefaultConfig().Simulation.MaxAttempts {
		t.Errorf("max_attempts = %d, expected default", cfg.Simulation.MaxAttempts)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "auto" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.Pack != "./levels/hard.yaml" {
		t.Errorf("pack = %q", cfg.Pack)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadMalformed(t *testing.T) {
	if _, err := Load(writeConfig(t, "simulation: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PLATFORMER_SIM_TICK_RATE", "120")
	t.Setenv("PLATFORMER_SIM_SEED", "77")
	t.Setenv("PLATFORMER_LOG_FORMAT", "json")
	t.Setenv("PLATFORMER_PACK", "/tmp/pack.yaml")

	cfg, err := Load(writeConfig(t, "simulation:\n  tick_rate: 30\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Simulation.TickRate != 120 {
		t.Errorf("tick_rate = %d, expected env override 120", cfg.Simulation.TickRate)
	}
	if cfg.Simulation.Seed != 77 {
		t.Errorf("seed = %d, expected 77", cfg.Simulation.Seed)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log format = %q, expected json", cfg.Log.Format)
	}
	if cfg.Pack != "/tmp/pack.yaml" {
		t.Errorf("pack = %q", cfg.Pack)
	}
}

func TestLoadInvalidEnv(t *testing.T) {
	t.Setenv("PLATFORMER_SIM_TICK_RATE", "fast")

	if _, err := Load(writeConfig(t, "{}")); err == nil {
		t.Error("expected error for non-numeric tick rate")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero tick rate", func(c *Config) { c.Simulation.TickRate = 0 }, true},
		{"negative max ticks", func(c *Config) { c.Simulation.MaxTicks = -1 }, true},
		{"negative attempts", func(c *Config) { c.Simulation.MaxAttempts = -2 }, true},
		{"unknown format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"unlimited run", func(c *Config) { c.Simulation.MaxTicks = 0; c.Simulation.MaxAttempts = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestFrameTiming(t *testing.T) {
	s := SimulationConfig{TickRate: 50}
	if s.FrameDelta() != 0.02 {
		t.Errorf("FrameDelta() = %g, expected 0.02", s.FrameDelta())
	}
	if s.FrameInterval().Milliseconds() != 20 {
		t.Errorf("FrameInterval() = %v, expected 20ms", s.FrameInterval())
	}
	if (SimulationConfig{}).FrameDelta() != 0 {
		t.Error("zero tick rate should give zero delta")
	}
}
