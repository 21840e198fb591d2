package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"driver":          "mysql",
		"host":            "db.example",
		"port":            3306,
		"user":            "forum",
		"password":        "pw",
		"database":        "healthcare",
		"connect_timeout": "10s",
		"log_level":       "warn",
		"logger":          "zap",
	})

	t.Run("loads from json", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-config", path})

		assert.Equal(t, "mysql", cfg.Database.Driver)
		assert.Equal(t, "db.example", cfg.Database.Host)
		assert.Equal(t, 3306, cfg.Database.Port)
		assert.Equal(t, "forum", cfg.Database.User)
		assert.Equal(t, "pw", cfg.Database.Password)
		assert.Equal(t, "healthcare", cfg.Database.Name)
		assert.Equal(t, 10*time.Second, cfg.Database.ConnectTimeout)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "zap", cfg.Logger)
		assert.Equal(t, "medfinder.log", cfg.LogFile, "absent keys keep their value")
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		cfg := &Config{Database: Database{Driver: "sqlite", Name: "x.db"}}
		parseJson(cfg, []string{"--host", "ignored"})

		assert.Equal(t, &Config{Database: Database{Driver: "sqlite", Name: "x.db"}}, cfg)
	})

	t.Run("flags override json", func(t *testing.T) {
		cfg := Load([]string{"-c", path, "--host", "override"})

		assert.Equal(t, "override", cfg.Database.Host)
		assert.Equal(t, "mysql", cfg.Database.Driver)
		assert.Equal(t, 10*time.Second, cfg.Database.ConnectTimeout)
	})

	t.Run("missing file → panics", func(t *testing.T) {
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", filepath.Join(dir, "nope.json")}) })
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", bad}) })
	})
}
