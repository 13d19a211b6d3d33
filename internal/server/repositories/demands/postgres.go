package demands

import (
	"context"
	"fmt"

	"github.com/vagali/vagali/internal/dbx"
	"github.com/vagali/vagali/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, demand *models.Demand) (*models.Demand, error) {
	query :=
		`INSERT INTO demands (id, user_id, title, description, cep, service, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		demand.ID, demand.UserID, demand.Title, demand.Description,
		demand.CEP, demand.Service, demand.Status).Scan(&demand.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return demand, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.Demand, error) {
	query :=
		`SELECT id, user_id, title, description, cep, service, status, created_at
		 FROM demands
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var list []models.Demand
	for rows.Next() {
		d := models.Demand{}
		err := rows.Scan(&d.ID, &d.UserID, &d.Title, &d.Description,
			&d.CEP, &d.Service, &d.Status, &d.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return list, nil
}
