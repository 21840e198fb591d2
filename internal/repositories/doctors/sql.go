// Package doctors reads the doctors directory and loads seed rows into it.
package doctors

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/medfinder/internal/common"
	"github.com/dmitrijs2005/medfinder/internal/dbx"
	"github.com/dmitrijs2005/medfinder/internal/models"
)

const (
	searchBySymptoms = `SELECT name, specialty, rating, education, description, contact_number
		FROM doctors
		WHERE symptoms LIKE ?`

	insertDoctor = `INSERT INTO doctors (name, specialty, rating, education, description, symptoms, contact_number)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
)

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

// SearchBySymptoms never returns a nil slice on success.
func (r *SQLRepository) SearchBySymptoms(ctx context.Context, pattern string) ([]models.DoctorRow, error) {
	rows, err := r.db.QueryContext(ctx, dbx.Rebind(r.dialect, searchBySymptoms), pattern)
	if err != nil {
		return nil, &common.QueryError{Op: "search doctors", Err: err}
	}
	defer rows.Close()

	result := make([]models.DoctorRow, 0)
	for rows.Next() {
		d, err := scanRow(rows)
		if err != nil {
			return nil, &common.QueryError{Op: "scan doctor", Err: err}
		}
		result = append(result, d)
	}

	if err := rows.Err(); err != nil {
		return nil, &common.QueryError{Op: "iterate doctors", Err: err}
	}

	return result, nil
}

// scanRow reads one search row. Any column may be NULL in a directory the
// application did not create.
func scanRow(rows *sql.Rows) (models.DoctorRow, error) {
	var (
		name, specialty, education, description, contact sql.NullString
		rating                                           sql.NullFloat64
	)
	if err := rows.Scan(&name, &specialty, &rating, &education, &description, &contact); err != nil {
		return models.DoctorRow{}, err
	}

	return models.DoctorRow{
		Name:          name.String,
		Specialty:     specialty.String,
		Rating:        rating.Float64,
		Unrated:       !rating.Valid,
		Education:     education.String,
		Description:   description.String,
		ContactNumber: contact.String,
	}, nil
}

func (r *SQLRepository) Create(ctx context.Context, d *models.Doctor) error {
	_, err := r.db.ExecContext(ctx, dbx.Rebind(r.dialect, insertDoctor),
		d.Name, d.Specialty, d.Rating, d.Education, d.Description, d.Symptoms, d.ContactNumber)
	if err != nil {
		return &common.QueryError{Op: "insert doctor", Err: err}
	}
	return nil
}
