package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copteruni/rulecalc/internal/config"
	"github.com/copteruni/rulecalc/internal/solver"
)

func TestConfigureWithFlagSavesLock(t *testing.T) {
	out, err := execute(t, "configure", "--default-lock", "Height")
	require.NoError(t, err)
	assert.Contains(t, out, "Default lock set to height")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "height", cfg.DefaultLock)
}

func TestConfigureRejectsUnknownLock(t *testing.T) {
	_, err := execute(t, "configure", "--default-lock", "distance")
	require.ErrorIs(t, err, solver.ErrUnknownLockMode)

	exists, err := config.Exists()
	require.NoError(t, err)
	assert.False(t, exists)
}
