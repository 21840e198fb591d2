package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/medfinder/internal/flagx"
)

var knownFlags = flagx.Spellings(
	"driver", "host", "port", "user", "password", "db-name", "dsn",
	"connect-timeout", "log-file", "log-level", "logger",
)

// parseFlags populates cfg from the flags in args. Arguments that belong to
// other parsers (subcommands, -c) are filtered out first. Parse errors panic.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("medfinder", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	db := &cfg.Database
	fs.StringVar(&db.Driver, "driver", db.Driver, "database driver: pgx, mysql or sqlite")
	fs.StringVar(&db.Host, "host", db.Host, "database host")
	fs.IntVar(&db.Port, "port", db.Port, "database port (0 = driver default)")
	fs.StringVar(&db.User, "user", db.User, "database user")
	fs.StringVar(&db.Password, "password", db.Password, "database password")
	fs.StringVar(&db.Name, "db-name", db.Name, "database name")
	fs.StringVar(&db.DSN, "dsn", db.DSN, "full data source name")
	timeout := fs.Int("connect-timeout", int(db.ConnectTimeout.Seconds()), "connect timeout (in seconds)")

	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file, - for stderr")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.Logger, "logger", cfg.Logger, "logger backend: slog or zap")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "connect-timeout" {
			db.ConnectTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
