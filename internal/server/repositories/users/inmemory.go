package users

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/vagali/vagali/internal/common"
	"github.com/vagali/vagali/internal/server/models"
)

// InMemoryRepository keeps accounts in a map. Used by service and handler
// tests instead of a live database.
type InMemoryRepository struct {
	mu    sync.Mutex
	byID  map[string]*models.User
	index map[string]string // email -> id
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID:  make(map[string]*models.User),
		index: make(map[string]string),
	}
}

func (r *InMemoryRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[user.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}

	u := *user
	u.ID = uuid.NewString()
	r.byID[u.ID] = &u
	r.index[u.Email] = u.ID

	out := u
	return &out, nil
}

func (r *InMemoryRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.index[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := *r.byID[id]
	return &u, nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *u
	return &out, nil
}

func (r *InMemoryRepository) Update(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[user.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}

	stored.FullName = user.FullName
	stored.IsProfessional = user.IsProfessional
	stored.Bio = user.Bio
	stored.City = user.City
	stored.MainService = user.MainService
	stored.Keywords = user.Keywords

	out := *stored
	return &out, nil
}

func (r *InMemoryRepository) ListProfessionals(_ context.Context, search string) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	needle := strings.ToLower(search)
	var list []models.User
	for _, u := range r.byID {
		if !u.IsProfessional {
			continue
		}
		if needle != "" && !matches(u, needle) {
			continue
		}
		list = append(list, *u)
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].Rating != list[j].Rating {
			return list[i].Rating > list[j].Rating
		}
		return list[i].FullName < list[j].FullName
	})

	return list, nil
}

func matches(u *models.User, needle string) bool {
	for _, field := range []string{u.FullName, u.City, u.MainService, u.Keywords} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
