package doctors

import (
	"context"

	"github.com/dmitrijs2005/medfinder/internal/models"
)

type Repository interface {
	// SearchBySymptoms returns the display rows of doctors whose symptoms
	// match the LIKE pattern, in the order the store yields them.
	SearchBySymptoms(ctx context.Context, pattern string) ([]models.DoctorRow, error)
	Create(ctx context.Context, d *models.Doctor) error
}
