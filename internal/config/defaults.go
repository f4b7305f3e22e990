package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// DefaultConfig returns the default simulation configuration.
func DefaultConfig() Config {
	return Config{
		Simulation: SimulationConfig{
			TickRate:    60,
			MaxTicks:    3600, // one minute at 60fps
			MaxAttempts: 3,
			Seed:        0,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}
