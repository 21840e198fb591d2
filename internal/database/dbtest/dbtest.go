// Package dbtest provides a migrated, file-backed SQLite gateway for tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/medfinder/internal/config"
	"github.com/dmitrijs2005/medfinder/internal/database"
	"github.com/dmitrijs2005/medfinder/internal/dbx"
	"github.com/dmitrijs2005/medfinder/internal/logging"
	"github.com/dmitrijs2005/medfinder/internal/models"
)

// Config returns SQLite settings pointing at a fresh file under t.TempDir().
func Config(t testing.TB) config.Database {
	t.Helper()
	return config.Database{
		Driver:         "sqlite",
		Name:           filepath.Join(t.TempDir(), "healthcare.db"),
		ConnectTimeout: 5 * time.Second,
	}
}

// NewGateway returns a gateway over a migrated database holding doctors.
func NewGateway(t testing.TB, doctors ...models.Doctor) *database.Gateway {
	t.Helper()

	gw, err := database.NewGateway(Config(t), logging.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, gw.Migrate(ctx))

	if len(doctors) > 0 {
		err = gw.Transact(ctx, func(ctx context.Context, tx dbx.DBTX) error {
			repo := gw.Repos().Doctors(tx)
			for i := range doctors {
				if err := repo.Create(ctx, &doctors[i]); err != nil {
					return err
				}
			}
			return nil
		})
		require.NoError(t, err)
	}

	return gw
}

// BrokenGateway returns a gateway whose every connection attempt fails.
func BrokenGateway(t testing.TB) *database.Gateway {
	t.Helper()

	cfg := Config(t)
	cfg.Name = filepath.Join(t.TempDir(), "missing", "dir", "healthcare.db")

	gw, err := database.NewGateway(cfg, logging.Nop())
	require.NoError(t, err)
	return gw
}

// CountRows returns the number of rows in table.
func CountRows(t testing.TB, gw *database.Gateway, table string) int {
	t.Helper()

	var n int
	err := gw.Transact(context.Background(), func(ctx context.Context, tx dbx.DBTX) error {
		return tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n)
	})
	require.NoError(t, err)
	return n
}
