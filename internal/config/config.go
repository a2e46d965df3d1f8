package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds engine and solver tuning knobs.
type Config struct {
	Solver  SolverConfig
	Engine  EngineConfig
	Logging LogConfig
}

// SolverConfig bounds the friction-factor fixed-point iteration.
type SolverConfig struct {
	FrictionTolerance float64 `envconfig:"PROCFLOW_FRICTION_TOL" default:"1e-6"`
	FrictionMaxIter   int     `envconfig:"PROCFLOW_FRICTION_MAX_ITER" default:"100"`
	LaminarCutoff     float64 `envconfig:"PROCFLOW_LAMINAR_CUTOFF" default:"2000"`
}

// EngineConfig holds evaluation defaults.
type EngineConfig struct {
	// VelocityTolerance is the allowed fractional deviation from a
	// single-target recommended velocity before auto-sizing kicks in.
	VelocityTolerance float64 `envconfig:"PROCFLOW_VELOCITY_TOL" default:"0.10"`
	// AbsoluteSplitFactor: flow-split values whose sum exceeds this
	// multiple of the incoming flow are read as absolute flows rather
	// than relative weights.
	AbsoluteSplitFactor float64 `envconfig:"PROCFLOW_SPLIT_ABSOLUTE_FACTOR" default:"1.5"`
	// DefaultPipeLength applies when a pipe is built without a length.
	DefaultPipeLengthM float64 `envconfig:"PROCFLOW_DEFAULT_PIPE_LENGTH_M" default:"1.0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"PROCFLOW_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"PROCFLOW_LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Solver: SolverConfig{
			FrictionTolerance: 1e-6,
			FrictionMaxIter:   100,
			LaminarCutoff:     2000,
		},
		Engine: EngineConfig{
			VelocityTolerance:   0.10,
			AbsoluteSplitFactor: 1.5,
			DefaultPipeLengthM:  1.0,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
