// Package cli implements the interactive terminal UI for the bucket list.
// It is view glue only: every rule lives in the auth and goals managers,
// and the developer-only commands are gated here, not in the core.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/eaportal/bucketlist/internal/auth"
	"github.com/eaportal/bucketlist/internal/clock"
	"github.com/eaportal/bucketlist/internal/config"
	"github.com/eaportal/bucketlist/internal/goals"
	"github.com/eaportal/bucketlist/internal/logging"
	"github.com/eaportal/bucketlist/internal/models"
	"github.com/eaportal/bucketlist/internal/storage"
)

type App struct {
	config *config.Config
	log    logging.Logger
	store  storage.Store
	auth   *auth.Manager
	goals  *goals.Manager
	user   *models.User
	reader *bufio.Reader
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	store, err := storage.NewStore(ctx, cfg.Backend, cfg.DataDir, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	authMgr, err := auth.NewManager(ctx, store, logger, clock.Real{})
	if err != nil {
		return nil, err
	}
	goalMgr, err := goals.NewManager(ctx, store, logger, clock.Real{})
	if err != nil {
		return nil, err
	}

	app := &App{
		config: cfg,
		log:    logger,
		store:  store,
		auth:   authMgr,
		goals:  goalMgr,
		reader: bufio.NewReader(os.Stdin),
	}

	// resume a previous session, if one is still valid
	app.user, err = authMgr.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close releases the storage backend when it holds external resources.
func (a *App) Close() {
	if c, ok := a.store.(io.Closer); ok {
		_ = c.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) isDeveloper() bool {
	return a.user != nil && a.user.IsDeveloper
}
