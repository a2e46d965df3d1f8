package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.InDelta(t, 1e-6, cfg.Solver.FrictionTolerance, 1e-12)
	assert.Equal(t, 100, cfg.Solver.FrictionMaxIter)
	assert.InDelta(t, 2000, cfg.Solver.LaminarCutoff, 1e-9)
	assert.InDelta(t, 0.10, cfg.Engine.VelocityTolerance, 1e-9)
	assert.InDelta(t, 1.5, cfg.Engine.AbsoluteSplitFactor, 1e-9)
	assert.InDelta(t, 1.0, cfg.Engine.DefaultPipeLengthM, 1e-9)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PROCFLOW_FRICTION_MAX_ITER", "50")
	t.Setenv("PROCFLOW_VELOCITY_TOL", "0.25")
	t.Setenv("PROCFLOW_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Solver.FrictionMaxIter)
	assert.InDelta(t, 0.25, cfg.Engine.VelocityTolerance, 1e-9)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched knobs keep their tag defaults.
	assert.InDelta(t, 1e-6, cfg.Solver.FrictionTolerance, 1e-12)
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	t.Setenv("PROCFLOW_FRICTION_MAX_ITER", "not-a-number")
	cfg := LoadOrDefault()
	assert.Equal(t, 100, cfg.Solver.FrictionMaxIter)
}
