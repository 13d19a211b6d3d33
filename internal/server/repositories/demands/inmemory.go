package demands

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vagali/vagali/internal/server/models"
)

// InMemoryRepository keeps demands in memory for tests.
type InMemoryRepository struct {
	mu   sync.Mutex
	rows map[string]*models.Demand
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{rows: make(map[string]*models.Demand)}
}

func (r *InMemoryRepository) Create(_ context.Context, demand *models.Demand) (*models.Demand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d := *demand
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	r.rows[d.ID] = &d

	out := d
	return &out, nil
}

func (r *InMemoryRepository) ListByUser(_ context.Context, userID string) ([]models.Demand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var list []models.Demand
	for _, d := range r.rows {
		if d.UserID == userID {
			list = append(list, *d)
		}
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	return list, nil
}
