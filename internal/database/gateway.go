package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/medfinder/internal/common"
	"github.com/dmitrijs2005/medfinder/internal/config"
	"github.com/dmitrijs2005/medfinder/internal/dbx"
	"github.com/dmitrijs2005/medfinder/internal/logging"
	"github.com/dmitrijs2005/medfinder/internal/repositories/repomanager"
)

// Gateway opens short-lived connections to the configured store.
type Gateway struct {
	cfg        config.Database
	driverName string
	dsn        string
	repos      repomanager.RepositoryManager
	logger     logging.Logger
}

// NewGateway validates the driver and prepares the DSN. No connection is
// made until Connect.
func NewGateway(cfg config.Database, logger logging.Logger) (*Gateway, error) {
	driverName, dialect, err := driverInfo(cfg.Driver)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", cfg.Driver, err)
	}

	return &Gateway{
		cfg:        cfg,
		driverName: driverName,
		dsn:        dataSourceName(dialect, cfg),
		repos:      repomanager.NewSQLRepositoryManager(dialect),
		logger:     logger.With("driver", driverName),
	}, nil
}

func (g *Gateway) Dialect() dbx.Dialect {
	return g.repos.Dialect()
}

// Repos returns the repository factory matching the gateway's dialect.
func (g *Gateway) Repos() repomanager.RepositoryManager {
	return g.repos
}

// open returns a single-connection handle that has answered a ping.
func (g *Gateway) open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open(g.driverName, g.dsn)
	if err != nil {
		return nil, &common.ConnectionError{Driver: g.driverName, Err: err}
	}
	db.SetMaxOpenConns(1)

	pingCtx := ctx
	if g.cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, g.cfg.ConnectTimeout)
		defer cancel()
	}

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, &common.ConnectionError{Driver: g.driverName, Err: err}
	}

	return db, nil
}

// Connect opens a private connection and starts a transaction on it. The
// caller must Close the returned Connection.
func (g *Gateway) Connect(ctx context.Context) (*Connection, error) {
	db, err := g.open(ctx)
	if err != nil {
		g.logger.Warn(ctx, "connect failed", "error", err)
		return nil, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		_ = db.Close()
		g.logger.Warn(ctx, "begin failed", "error", err)
		return nil, &common.ConnectionError{Driver: g.driverName, Err: err}
	}

	g.logger.Debug(ctx, "connection opened")
	return &Connection{db: db, tx: tx, logger: g.logger}, nil
}

// WithConnection runs fn on a fresh connection and closes it afterwards,
// also when fn fails or panics. Work fn does not Commit is rolled back.
func (g *Gateway) WithConnection(ctx context.Context, fn func(ctx context.Context, conn *Connection) error) error {
	conn, err := g.Connect(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := conn.Close(); cerr != nil {
			g.logger.Warn(ctx, "connection close failed", "error", cerr)
		}
	}()

	return fn(ctx, conn)
}

// Transact runs fn inside a transaction that commits when fn returns nil.
func (g *Gateway) Transact(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	db, err := g.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	return dbx.WithTx(ctx, db, nil, fn)
}

// Migrate applies the embedded schema migrations.
func (g *Gateway) Migrate(ctx context.Context) error {
	db, err := g.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetLogger(&gooseLogger{ctx: ctx, logger: g.logger})
	if err := g.repos.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	return nil
}
