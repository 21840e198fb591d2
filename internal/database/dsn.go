package database

import (
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/dmitrijs2005/medfinder/internal/common"
	"github.com/dmitrijs2005/medfinder/internal/config"
	"github.com/dmitrijs2005/medfinder/internal/dbx"
)

// driverInfo resolves the configured driver into the database/sql driver
// name and the SQL dialect.
func driverInfo(driver string) (string, dbx.Dialect, error) {
	switch strings.ToLower(driver) {
	case "pgx", "postgres", "postgresql":
		return "pgx", dbx.Postgres, nil
	case "mysql":
		return "mysql", dbx.MySQL, nil
	case "sqlite", "sqlite3":
		return "sqlite", dbx.SQLite, nil
	default:
		return "", "", common.ErrUnsupportedDriver
	}
}

// dataSourceName builds the DSN for cfg unless cfg.DSN already holds one.
func dataSourceName(dialect dbx.Dialect, cfg config.Database) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}

	switch dialect {
	case dbx.Postgres:
		q := url.Values{}
		q.Set("sslmode", "disable")
		if cfg.ConnectTimeout > 0 {
			q.Set("connect_timeout", strconv.Itoa(int(cfg.ConnectTimeout.Seconds())))
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(cfg.User, cfg.Password),
			Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(portOrDefault(cfg.Port, 5432))),
			Path:     "/" + cfg.Name,
			RawQuery: q.Encode(),
		}
		return u.String()

	case dbx.MySQL:
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(portOrDefault(cfg.Port, 3306)))
		mc.DBName = cfg.Name
		mc.Timeout = cfg.ConnectTimeout
	mc.ParseTime = true
		return mc.FormatDSN()

	default:
		return cfg.Name
	}
}

func portOrDefault(port, def int) int {
	if port == 0 {
		return def
	}
	return port
}
