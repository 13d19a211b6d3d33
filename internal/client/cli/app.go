// Package cli is the interactive Vagali client. It is a session consumer:
// it reads session state through the session.Manager and requests every
// change through the manager's operations.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/vagali/vagali/internal/client/api"
	"github.com/vagali/vagali/internal/client/config"
	"github.com/vagali/vagali/internal/client/credstore"
	"github.com/vagali/vagali/internal/client/session"
	"github.com/vagali/vagali/internal/logging"
)

type App struct {
	config  *config.Config
	api     api.Client
	session *session.Manager
	db      *sql.DB
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	db, err := credstore.OpenDatabase(ctx, c.CredentialsDB)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout)
	creds := credstore.NewCredentials(credstore.NewSQLiteStore(db))
	mgr := session.NewManager(apiClient, creds, logger)
	mgr.Restore(ctx)

	return &App{
		config:  c,
		api:     apiClient,
		session: mgr,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Current() != nil
}

// status renders the prompt fragment: the display name and role when logged
// in, "guest" otherwise.
func (a *App) status() string {
	u := a.session.Current()
	if u == nil {
		return "guest"
	}
	return u.FullName + " (" + string(u.Role) + ")"
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}
