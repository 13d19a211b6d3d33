package users

import (
	"context"

	"github.com/vagali/vagali/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	ListProfessionals(ctx context.Context, search string) ([]models.User, error)
}
