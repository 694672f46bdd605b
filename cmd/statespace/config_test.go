package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallnest/statespace/search"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())

	got := search.NewConfig(cfg.searchOptions()...)
	assert.Equal(t, search.DefaultCycleDepth, got.CycleDepth)
	assert.Equal(t, search.DefaultWeight, got.Weight)
	assert.Equal(t, search.DefaultDepthLimit, got.DepthLimit)
	assert.Zero(t, got.MaxDepthLimit)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	path := writeFile(t, "cfg.yaml", "strategy: weighted-astar\nweight: 2.5\nmax_depth_limit: 12\nmetrics: true\nmap: roads.yaml\n")
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "weighted-astar", cfg.Strategy)
	assert.Equal(t, 2.5, cfg.Weight)
	assert.Equal(t, 12, cfg.MaxDepthLimit)
	assert.True(t, cfg.Metrics)
	assert.Equal(t, "roads.yaml", cfg.Map)
	// untouched keys keep their defaults
	assert.Equal(t, formatText, cfg.Format)
	assert.Equal(t, search.DefaultCycleDepth, cfg.CycleDepth)
}

func TestValidateStrategyIgnoresCase(t *testing.T) {
	cfg := defaultConfig()
	cfg.Strategy = "AStar"
	assert.NoError(t, cfg.Validate())

	cfg.Strategy = ""
	assert.ErrorContains(t, cfg.Validate(), "strategy")
}
