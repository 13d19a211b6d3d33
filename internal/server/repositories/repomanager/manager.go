package repomanager

import (
	"context"
	"database/sql"

	"github.com/vagali/vagali/internal/dbx"
	"github.com/vagali/vagali/internal/server/repositories/demands"
	"github.com/vagali/vagali/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Demands(db dbx.DBTX) demands.Repository
}
