package demands

import (
	"context"

	"github.com/vagali/vagali/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, demand *models.Demand) (*models.Demand, error)
	ListByUser(ctx context.Context, userID string) ([]models.Demand, error)
}
