// Package app wires configuration, logging, the database gateway and the
// flows together, and exposes them as cobra commands.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/medfinder/internal/cli"
	"github.com/dmitrijs2005/medfinder/internal/config"
	"github.com/dmitrijs2005/medfinder/internal/database"
	"github.com/dmitrijs2005/medfinder/internal/logging"
	"github.com/dmitrijs2005/medfinder/internal/seed"
	"github.com/dmitrijs2005/medfinder/internal/services"
	"github.com/dmitrijs2005/medfinder/internal/tui"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	closeLog     func() error
	gateway      *database.Gateway
	registration *services.RegistrationService
	search       *services.SearchService
}

func NewApp(c *config.Config) (*App, error) {
	logger, closeLog, err := logging.New(logging.Options{
		Backend: c.Logger,
		Level:   c.LogLevel,
		File:    c.LogFile,
	})
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	gw, err := database.NewGateway(c.Database, logger)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	return &App{
		config:       c,
		logger:       logger,
		closeLog:     closeLog,
		gateway:      gw,
		registration: services.NewRegistrationService(gw, nil, logger),
		search:       services.NewSearchService(gw, logger),
	}, nil
}

// Close flushes and releases the log sink.
func (app *App) Close() error {
	return app.closeLog()
}

// initSignalHandler cancels the returned context on SIGINT, SIGTERM or SIGQUIT.
func (app *App) initSignalHandler(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
}

// RunUI starts the terminal UI and blocks until the user quits.
func (app *App) RunUI(ctx context.Context) error {
	ctx, cancel := app.initSignalHandler(ctx)
	defer cancel()

	app.logger.Info(ctx, "Starting app...", "driver", app.config.Database.Driver)
	defer app.logger.Info(ctx, "App stopped")

	return tui.Run(ctx, app.registration, app.search)
}

func (app *App) Migrate(ctx context.Context) error {
	if err := app.gateway.Migrate(ctx); err != nil {
		app.logger.Error(ctx, "migration failed", "error", err)
		return err
	}
	app.logger.Info(ctx, "migrations applied")
	return nil
}

// Seed loads doctors from the YAML file at path.
func (app *App) Seed(ctx context.Context, path string) (int, error) {
	f, err := seed.Load(path)
	if err != nil {
		return 0, err
	}

	n, err := seed.Apply(ctx, app.gateway, app.gateway.Repos().Doctors, f)
	if err != nil {
		app.logger.Error(ctx, "seeding failed", "file", path, "error", err)
		return 0, err
	}
	app.logger.Info(ctx, "doctors seeded", "file", path, "count", n)
	return n, nil
}

func (app *App) Register(ctx context.Context, in io.Reader, out io.Writer) (services.Outcome, error) {
	return cli.Register(ctx, in, out, app.registration)
}

func (app *App) Search(ctx context.Context, out io.Writer, symptoms string) services.Outcome {
	return cli.Search(ctx, out, app.search, symptoms)
}
