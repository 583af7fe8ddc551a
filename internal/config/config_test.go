package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/villagers/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("VILLAGERS_TABLES_DIR", "")
	t.Setenv("VILLAGERS_PLAIN", "")
	t.Setenv("VILLAGERS_COUNT", "")
	t.Setenv("NO_COLOR", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.TablesDir)
	assert.False(t, cfg.Plain)
	assert.Equal(t, 1, cfg.DefaultCount)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("VILLAGERS_TABLES_DIR", "/tmp/tables")
	t.Setenv("VILLAGERS_PLAIN", "true")
	t.Setenv("VILLAGERS_COUNT", "5")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/tables", cfg.TablesDir)
	assert.True(t, cfg.Plain)
	assert.Equal(t, 5, cfg.DefaultCount)
}

func TestLoad_NoColor(t *testing.T) {
	t.Setenv("VILLAGERS_PLAIN", "false")
	t.Setenv("NO_COLOR", "1")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.Plain)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("VILLAGERS_PLAIN", "sideways")
	t.Setenv("VILLAGERS_COUNT", "many")
	t.Setenv("NO_COLOR", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.False(t, cfg.Plain)
	assert.Equal(t, 1, cfg.DefaultCount)
}
