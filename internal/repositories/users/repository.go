package users

import (
	"context"

	"github.com/dmitrijs2005/medfinder/internal/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) error
}
