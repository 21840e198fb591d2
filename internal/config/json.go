package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/medfinder/internal/flagx"
	"github.com/dmitrijs2005/medfinder/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Only keys present in
// the file overlay the current values.
type JsonConfig struct {
	Driver         string         `json:"driver"`
	Host           string         `json:"host"`
	Port           int            `json:"port"`
	User           string         `json:"user"`
	Password       string         `json:"password"`
	Database       string         `json:"database"`
	DSN            string         `json:"dsn"`
	ConnectTimeout timex.Duration `json:"connect_timeout"`
	LogFile        string         `json:"log_file"`
	LogLevel       string         `json:"log_level"`
	Logger         string         `json:"logger"`
}

// parseJson overlays cfg with the file named by -c/-config in args.
// Read and decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.Database.Driver, jc.Driver)
	overlay(&cfg.Database.Host, jc.Host)
	overlay(&cfg.Database.User, jc.User)
	overlay(&cfg.Database.Password, jc.Password)
	overlay(&cfg.Database.Name, jc.Database)
	overlay(&cfg.Database.DSN, jc.DSN)
	overlay(&cfg.LogFile, jc.LogFile)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.Logger, jc.Logger)
	if jc.Port != 0 {
		cfg.Database.Port = jc.Port
	}
	if jc.ConnectTimeout.Duration != 0 {
		cfg.Database.ConnectTimeout = jc.ConnectTimeout.Duration
	}
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
