// Package config provides YAML-based simulation configuration loading with
// environment variable overrides.
package config

import (
	"fmt"
	"time"
)

// Config contains all configuration for a simulation run.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation" envPrefix:"SIM_"`
	Log        LogConfig        `yaml:"log"        envPrefix:"LOG_"`
	Pack       string           `yaml:"pack"       env:"PACK"`
}

// SimulationConfig defines how the driver steps levels.
type SimulationConfig struct {
	TickRate    int   `yaml:"tick_rate"    env:"TICK_RATE"`    // Frames per second
	MaxTicks    int   `yaml:"max_ticks"    env:"MAX_TICKS"`    // Frame budget per attempt, 0 = unlimited
	MaxAttempts int   `yaml:"max_attempts" env:"MAX_ATTEMPTS"` // Tries per level, 0 = unlimited
	Seed        int64 `yaml:"seed"         env:"SEED"`         // 0 means seed from the clock
}

// FrameDelta returns the simulated time that passes in one frame.
func (s SimulationConfig) FrameDelta() float64 {
	if s.TickRate <= 0 {
		return 0
	}
	return 1 / float64(s.TickRate)
}

// FrameInterval returns the wall-clock duration of one frame.
func (s SimulationConfig) FrameInterval() time.Duration {
	if s.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(s.TickRate)
}

// LogConfig defines logger output.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LEVEL"`  // debug, info, warn, error
	Format string `yaml:"format" env:"FORMAT"` // auto, text, logfmt, json
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Simulation.TickRate)
	}
	if c.Simulation.MaxTicks < 0 {
		return fmt.Errorf("config: max_ticks must not be negative, got %d", c.Simulation.MaxTicks)
	}
	if c.Simulation.MaxAttempts < 0 {
		return fmt.Errorf("config: max_attempts must not be negative, got %d", c.Simulation.MaxAttempts)
	}
	switch c.Log.Format {
	case "", "auto", "text", "logfmt", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	return nil
}
