package config

import (
	"os"
	"time"
)

// Database holds the fixed connection parameters of the relational store.
type Database struct {
	Driver         string
	Host           string
	Port           int
	User           string
	Password       string
	Name           string
	DSN            string
	ConnectTimeout time.Duration
}

// Config holds runtime settings for medfinder.
type Config struct {
	Database Database
	LogFile  string
	LogLevel string
	Logger   string
}

// LoadDefaults populates c with development defaults.
// NOTE: the credentials are for a local database only.
func (c *Config) LoadDefaults() {
	c.Database = Database{
		Driver:         "pgx",
		Host:           "localhost",
		User:           "healthcare",
		Password:       "healthcare",
		Name:           "healthcare",
		ConnectTimeout: 5 * time.Second,
	}
	c.LogFile = "medfinder.log"
	c.LogLevel = "info"
	c.Logger = "slog"
}

// Load builds a Config from defaults, then the JSON file named in args (if
// any), then the flags in args. Invalid input panics.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}

// LoadConfig is Load applied to the process arguments.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}
