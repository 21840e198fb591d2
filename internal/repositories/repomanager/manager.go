// Package repomanager vends dialect-aware repository implementations bound to
// a caller-supplied handle, and runs the embedded schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/medfinder/internal/dbx"
	"github.com/dmitrijs2005/medfinder/internal/migrations"
	"github.com/dmitrijs2005/medfinder/internal/repositories/doctors"
	"github.com/dmitrijs2005/medfinder/internal/repositories/users"
)

type RepositoryManager interface {
	Dialect() dbx.Dialect
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Doctors(db dbx.DBTX) doctors.Repository
}

// SQLRepositoryManager serves every supported dialect; only placeholder
// syntax and the goose dialect differ between them.
type SQLRepositoryManager struct {
	dialect dbx.Dialect
}

func NewSQLRepositoryManager(dialect dbx.Dialect) *SQLRepositoryManager {
	return &SQLRepositoryManager{dialect: dialect}
}

func (m *SQLRepositoryManager) Dialect() dbx.Dialect {
	return m.dialect
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db, m.dialect)
}

// Doctors returns a doctors.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Doctors(db dbx.DBTX) doctors.Repository {
	return doctors.NewSQLRepository(db, m.dialect)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations against db.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(string(m.dialect)); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}
