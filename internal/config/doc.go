// Package config loads runtime configuration for medfinder.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags (single or double dash)
//
//	--driver string        pgx | mysql | sqlite
//	--host string          database host
//	--port int             database port (0 = driver default)
//	--user string          database user
//	--password string      database password
//	--db-name string       database name (file path for sqlite)
//	--dsn string           full DSN, overrides the fields above
//	--connect-timeout int  connect timeout (seconds)
//	--log-file string      log destination ("-" for stderr)
//	--log-level string     debug | info | warn | error
//	--logger string        slog | zap
//
// # JSON schema
//
//	{
//	  "driver": "pgx",
//	  "host": "localhost",
//	  "port": 5432,
//	  "user": "healthcare",
//	  "password": "healthcare",
//	  "database": "healthcare",
//	  "connect_timeout": "5s",
//	  "log_file": "medfinder.log",
//	  "log_level": "info",
//	  "logger": "slog"
//	}
//
// Connection parameters are never taken from form input; they are fixed for
// the lifetime of the process.
package config
