package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "pgx", c.Database.Driver)
	assert.Equal(t, "localhost", c.Database.Host)
	assert.Equal(t, 0, c.Database.Port)
	assert.Equal(t, "healthcare", c.Database.User)
	assert.Equal(t, "healthcare", c.Database.Name)
	assert.Empty(t, c.Database.DSN)
	assert.Equal(t, 5*time.Second, c.Database.ConnectTimeout)
	assert.Equal(t, "medfinder.log", c.LogFile)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "slog", c.Logger)
}

func TestLoad_UsesDefaultsWithoutArgs(t *testing.T) {
	cfg := Load(nil)

	require.NotNil(t, cfg, "Load must not return nil")
	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *cfg)
}
