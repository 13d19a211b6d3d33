package repomanager

import (
	"context"
	"database/sql"

	"github.com/vagali/vagali/internal/dbx"
	"github.com/vagali/vagali/internal/server/repositories/demands"
	"github.com/vagali/vagali/internal/server/repositories/users"
)

// InMemoryRepositoryManager vends the in-memory repositories. Unlike the
// PostgreSQL manager it holds state, so the same instance must be reused
// across calls.
type InMemoryRepositoryManager struct {
	users   *users.InMemoryRepository
	demands *demands.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:   users.NewInMemoryRepository(),
		demands: demands.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Users(_ dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Demands(_ dbx.DBTX) demands.Repository {
	return m.demands
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}
