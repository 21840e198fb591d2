// Package users persists registration records.
package users

import (
	"context"

	"github.com/dmitrijs2005/medfinder/internal/common"
	"github.com/dmitrijs2005/medfinder/internal/dbx"
	"github.com/dmitrijs2005/medfinder/internal/models"
)

const insertUser = `INSERT INTO users (name, email, password) VALUES (?, ?, ?)`

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

// Create inserts user as one row. Values are bound, never interpolated; the
// password goes in as received.
func (r *SQLRepository) Create(ctx context.Context, user *models.User) error {
	_, err := r.db.ExecContext(ctx, dbx.Rebind(r.dialect, insertUser), user.Name, user.Email, user.Password)
	if err != nil {
		return &common.QueryError{Op: "insert user", Err: err}
	}
	return nil
}
