// Package server initializes and runs the locshare server. It opens the
// storage backend, applies migrations, wires the services together and
// serves the HTTP API until the process is signalled to stop.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"locshare/internal/logging"
	"locshare/internal/server/config"
	"locshare/internal/server/httpapi"
	"locshare/internal/server/repositories/repomanager"
	"locshare/internal/server/services"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	userService     *services.UserService
	locationService *services.LocationService
	sharingService  *services.SharingService
	accessService   *services.AccessService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	db, rm, err := repomanager.Open(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	audit := services.NewAuditRecorder(db, rm, logger)
	ls := services.NewLocationService(db, rm, audit, logger)
	ss := services.NewSharingService(db, rm, ls, logger)
	as := services.NewAccessService(db, rm, ss, audit, logger)
	us := services.NewUserService(db, rm, audit, cfg, logger)

	return &App{
		config:          cfg,
		logger:          logger,
		db:              db,
		userService:     us,
		locationService: ls,
		sharingService:  ss,
		accessService:   as,
	}, nil
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	router := httpapi.NewRouter(
		app.userService,
		app.locationService,
		app.sharingService,
		app.accessService,
		[]byte(app.config.SecretKey),
		app.logger,
	)

	s := httpapi.NewServer(app.config.EndpointAddr, router, app.config.ShutdownTimeout, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
