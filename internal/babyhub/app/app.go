package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/bagelsfordinner/Babyhub/internal/babyhub/http"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/identity"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/service"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/store"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/store/drivers/sqlite"
	"github.com/bagelsfordinner/Babyhub/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the hub service together: store, identity provider
// client, services, and the HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	provider identity.Provider

	inviteService    *service.InviteService
	accessService    *service.AccessService
	profileService   *service.ProfileService
	photoService     *service.PhotoService
	registryService  *service.RegistryService
	bootstrapService *service.BootstrapService
	housekeeper      *service.Housekeeper

	server *http.Server
	router *httpapi.Router

	stopHousekeeping context.CancelFunc
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "babyhub",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initIdentity(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	hkCtx, cancel := context.WithCancel(slogx.WithContext(context.Background(), app.logger))
	app.stopHousekeeping = cancel
	go app.housekeeper.Run(hkCtx)

	app.logger.Info("babyhub starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully stops the server, housekeeping, and database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down babyhub...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.stopHousekeeping != nil {
		app.stopHousekeeping()
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("babyhub stopped")
	return nil
}

func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initIdentity() error {
	verifier, err := identity.NewSessionVerifierFromFile(app.cfg.IdentityPublicKeyFile, app.cfg.IdentityIssuer)
	if err != nil {
		return fmt.Errorf("failed to load identity public key: %w", err)
	}

	app.provider = identity.NewClient(app.cfg.IdentityTokenURL, verifier)
	return nil
}

func (app *Application) initServices() {
	app.inviteService = &service.InviteService{Store: app.db}
	app.accessService = &service.AccessService{Store: app.db}
	app.profileService = &service.ProfileService{
		Store:        app.db,
		PollInterval: app.cfg.ProfilePollInterval,
		PollTimeout:  app.cfg.ProfilePollTimeout,
	}
	app.photoService = &service.PhotoService{Store: app.db}
	app.registryService = &service.RegistryService{Store: app.db}
	app.bootstrapService = &service.BootstrapService{
		Store:   app.db,
		Invites: app.inviteService,
		Token:   app.cfg.BootstrapToken,
	}
	app.housekeeper = &service.Housekeeper{
		Invites:  app.inviteService,
		Interval: app.cfg.HousekeepingInterval,
	}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.provider,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.InviteService = app.inviteService
	router.AccessService = app.accessService
	router.ProfileService = app.profileService
	router.PhotoService = app.photoService
	router.RegistryService = app.registryService
	router.BootstrapService = app.bootstrapService
	router.CallbackService = &httpapi.CallbackDeps{
		Provider: app.provider,
		Profiles: app.profileService,
		Invites:  app.inviteService,
	}
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
