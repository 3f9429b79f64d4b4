// Package cli is the interactive terminal front end of the TaskVault client.
// It renders nothing but text: all session logic lives in the session store,
// all network logic in the api client.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"taskvault/internal/client/api"
	"taskvault/internal/client/config"
	"taskvault/internal/client/models"
	"taskvault/internal/client/session"
	"taskvault/internal/client/storage"
	"taskvault/internal/client/todos"
	"taskvault/internal/client/tokenstore"
	"taskvault/internal/logging"
)

// SessionStore is the slice of the session store the CLI consumes.
type SessionStore interface {
	Restore(ctx context.Context) error
	Login(ctx context.Context, creds models.Credentials) error
	Register(ctx context.Context, data models.RegisterData) error
	Logout(ctx context.Context) error
	Session() session.Session
	State() session.State
}

type App struct {
	config  *config.Config
	session SessionStore
	todos   *todos.Store
	reader  *bufio.Reader
	log     logging.Logger
	db      *sql.DB
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "initializing local database", "error", err)
		return nil, err
	}

	tokens := tokenstore.NewSQLiteStore(db)
	apiClient := api.New(cfg.APIBaseURL, cfg.RequestTimeout, cfg.RegisterHealthCheck, tokens, log)

	return &App{
		config:  cfg,
		session: session.NewStore(apiClient, tokens, log),
		todos:   todos.NewStore(),
		reader:  bufio.NewReader(os.Stdin),
		log:     log,
		db:      db,
	}, nil
}

// Run restores the previous session (if any) and starts the prompt loop.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.db != nil {
			_ = a.db.Close()
		}
	}()

	_ = a.session.Restore(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.StateAuthenticated
}
