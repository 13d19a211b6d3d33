package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/vagali/vagali/internal/common"
	"github.com/vagali/vagali/internal/server/models"
	"github.com/vagali/vagali/internal/server/repositories/repomanager"
)

type DemandService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDemandService(db *sql.DB, m repomanager.RepositoryManager) *DemandService {
	return &DemandService{db: db, repomanager: m}
}

// isValidCEP accepts the 8-digit Brazilian postal code, with or without the
// usual dash (01310-930).
func isValidCEP(cep string) bool {
	cep = strings.ReplaceAll(cep, "-", "")
	if len(cep) != 8 {
		return false
	}
	for _, r := range cep {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (s *DemandService) Create(ctx context.Context, userID, title, description, cep, service string) (*models.Demand, error) {
	if title == "" || service == "" || !isValidCEP(cep) {
		return nil, common.ErrorValidation
	}

	demand := &models.Demand{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
		CEP:         cep,
		Service:     service,
		Status:      models.DemandStatusPending,
	}

	repo := s.repomanager.Demands(s.db)

	demand, err := repo.Create(ctx, demand)
	if err != nil {
		return nil, fmt.Errorf("error creating demand: %w", err)
	}

	return demand, nil
}

func (s *DemandService) ListByUser(ctx context.Context, userID string) ([]models.Demand, error) {
	repo := s.repomanager.Demands(s.db)
	return repo.ListByUser(ctx, userID)
}
