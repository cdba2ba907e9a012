package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 100000.0, cfg.InitialCapital)
	assert.Equal(t, 0.001, cfg.CommissionRate)
	assert.Equal(t, 0.0005, cfg.SlippageRate)
	assert.Equal(t, 252.0, cfg.BarsPerYear)
	assert.Equal(t, 252, cfg.TrainBars)
	assert.Equal(t, 63, cfg.TestBars)
	assert.Equal(t, 4, cfg.WalkForwardWorkers)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("INITIAL_CAPITAL", "250000")
	t.Setenv("TRAIN_BARS", "120")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 250000.0, cfg.InitialCapital)
	assert.Equal(t, 120, cfg.TrainBars)
}
