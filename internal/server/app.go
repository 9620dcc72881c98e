// Package server initializes and runs the NeoInbox web application.
// It opens and migrates the database, builds the account services, handles
// graceful shutdown and serves the HTML front.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/neoinbox/internal/logging"
	"github.com/dmitrijs2005/neoinbox/internal/server/config"
	"github.com/dmitrijs2005/neoinbox/internal/server/password"
	"github.com/dmitrijs2005/neoinbox/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/neoinbox/internal/server/services"
	"github.com/dmitrijs2005/neoinbox/internal/server/web"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
	web         *web.Server
}

// NewLogger builds the process logger from config.
func NewLogger(c *config.Config, w io.Writer) (logging.Logger, error) {
	return logging.NewLogger(w, c.LogLevel, c.LogFormat)
}

// NewUserService opens and migrates the configured database and returns the
// account service over it. The caller owns the returned *sql.DB.
func NewUserService(ctx context.Context, c *config.Config, logger logging.Logger) (*services.UserService, *sql.DB, error) {
	rm, err := repomanager.New(c.DatabaseDriver)
	if err != nil {
		return nil, nil, err
	}

	db, err := rm.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db migration error: %w", err)
	}

	hasher, err := password.New(c.PasswordScheme, c.BcryptCost)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return services.NewUserService(rm.Users(db), hasher, logger), db, nil
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger, err := NewLogger(c, os.Stdout)
	if err != nil {
		return nil, err
	}

	us, db, err := NewUserService(ctx, c, logger)
	if err != nil {
		return nil, err
	}

	if c.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	ws, err := web.New(us, logger, web.Options{
		SessionSecret: c.SessionSecret,
		SessionMaxAge: c.SessionMaxAge,
		Secure:        c.ReleaseMode,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{config: c, logger: logger, db: db, userService: us, web: ws}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// closes the database.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "driver", app.config.DatabaseDriver)

	app.initSignalHandler(cancelFunc)

	err := app.web.Run(ctx, app.config.HTTPAddress)
	if err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error(ctx, "close db", "error", cerr)
	}

	app.logger.Info(ctx, "App stopped")
	return err
}
