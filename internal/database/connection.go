package database

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/dmitrijs2005/medfinder/internal/common"
	"github.com/dmitrijs2005/medfinder/internal/logging"
)

// Connection is one private database session with an open transaction.
// It satisfies dbx.DBTX, so repositories can be bound to it directly.
type Connection struct {
	db     *sql.DB
	tx     *sql.Tx
	logger logging.Logger

	mu        sync.Mutex
	committed bool
	closed    bool
}

func (c *Connection) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.tx.ExecContext(ctx, query, args...)
}

func (c *Connection) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return c.tx.QueryContext(ctx, query, args...)
}

func (c *Connection) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return c.tx.QueryRowContext(ctx, query, args...)
}

// Commit makes the connection's writes durable.
func (c *Connection) Commit() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return common.ErrConnectionClosed
	}
	if err := c.tx.Commit(); err != nil {
		return &common.QueryError{Op: "commit", Err: err}
	}
	c.committed = true
	return nil
}

// Close rolls back uncommitted work and releases the connection. Calling it
// more than once is harmless.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	if !c.committed {
		if err := c.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			c.logger.Warn(context.Background(), "rollback failed", "error", err)
		}
	}

	err := c.db.Close()
	c.logger.Debug(context.Background(), "connection closed")
	return err
}
