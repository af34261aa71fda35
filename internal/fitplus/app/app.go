package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aussiebroadwan/fitplus/internal/fitplus/console"
	"github.com/aussiebroadwan/fitplus/internal/fitplus/service"
	"github.com/aussiebroadwan/fitplus/internal/fitplus/store"
	"github.com/aussiebroadwan/fitplus/internal/fitplus/store/drivers/postgres"
	"github.com/aussiebroadwan/fitplus/internal/fitplus/store/drivers/sqlite"
	"github.com/aussiebroadwan/fitplus/pkg/cryptox"
	"github.com/aussiebroadwan/fitplus/pkg/limitx"
	"github.com/aussiebroadwan/fitplus/pkg/slogx"
)

// BuildVersion is overridden at build time via ldflags.
var BuildVersion = "v0.1.0"

// Application holds the store, services and console shell.
type Application struct {
	cfg     Config
	logger  *slog.Logger
	logFile *os.File

	db store.Store

	accounts  *service.AccountService
	nutrition *service.NutritionService
	progress  *service.ProgressService

	shell *console.Shell
}

// New wires the application. The console reads from in and writes to out;
// logs go to stderr and the configured log file.
func New(cfg Config, in io.Reader, out io.Writer) (*Application, error) {
	app := &Application{cfg: cfg}

	if err := app.initLogger(); err != nil {
		return nil, err
	}
	if err := app.initDatabase(); err != nil {
		app.closeLog()
		return nil, err
	}
	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		app.closeLog()
		return nil, err
	}

	app.shell = console.NewShell(app.accounts, app.nutrition, app.progress, in, out)
	return app, nil
}

// Run blocks on the console until the user quits, input ends or ctx is
// cancelled, then shuts down.
func (app *Application) Run(ctx context.Context) error {
	ctx = slogx.WithContext(ctx, app.logger)
	app.logger.Info("fitplus starting", "version", BuildVersion)

	if err := app.db.Ping(ctx); err != nil {
		_ = app.Shutdown()
		return fmt.Errorf("database unavailable: %w", err)
	}

	// The shell blocks on input, so cancellation is watched separately.
	done := make(chan error, 1)
	go func() { done <- app.shell.Run(ctx) }()

	var runErr error
	select {
	case runErr = <-done:
	case <-ctx.Done():
		app.logger.Info("application interrupted by user")
		// The store must outlive any command still running.
		app.shell.Stop()
		runErr = ctx.Err()
	}

	if err := app.Shutdown(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// Shutdown closes the store and the log file.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down fitplus")

	var closeErr error
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		closeErr = err
	}
	app.closeLog()
	return closeErr
}

func (app *Application) initLogger() error {
	logCfg := slogx.Config{
		Service: "fitplus",
		Version: BuildVersion,
		Env:     app.cfg.Env,
		Level:   app.cfg.LogLevel,
		Format:  app.cfg.LogFormat,
	}

	if app.cfg.LogFile != "" {
		f, err := os.OpenFile(app.cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		app.logFile = f
		logCfg.File = f
	}

	app.logger = slogx.New(logCfg)
	return nil
}

func (app *Application) closeLog() {
	if app.logFile != nil {
		_ = app.logFile.Close()
		app.logFile = nil
	}
}

// initDatabase opens PostgreSQL when a URL is configured, otherwise the
// local SQLite file, and applies migrations.
func (app *Application) initDatabase() error {
	var (
		db     store.Store
		err    error
		driver string
	)
	if app.cfg.DatabaseURL != "" {
		driver = "postgres"
		db, err = postgres.NewStore(app.cfg.DatabaseURL)
	} else {
		driver = "sqlite"
		db, err = sqlite.NewStore(sqlite.FileDSN(app.cfg.DatabaseFile))
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", driver)
	return nil
}

func (app *Application) initServices() error {
	var creds service.Credentials = service.PlaintextCredentials{}
	if app.cfg.PasswordMode == PasswordModeArgon2 {
		pepper, err := cryptox.LoadPepper(app.cfg.PepperFile)
		if err != nil {
			return fmt.Errorf("failed to load pepper: %w", err)
		}
		creds = service.HashedCredentials{Hasher: cryptox.Hasher{Pepper: pepper}}
	}

	var limiter *limitx.Limiter
	if app.cfg.LoginAttempts > 0 {
		limiter = limitx.New(limitx.Config{
			Attempts: app.cfg.LoginAttempts,
			Window:   app.cfg.LoginWindow,
		})
	}

	app.accounts = &service.AccountService{
		Store:       app.db,
		Credentials: creds,
		Limiter:     limiter,
	}
	app.nutrition = &service.NutritionService{
		Store:    app.db,
		Rollover: &service.RolloverPolicy{},
	}
	app.progress = &service.ProgressService{Store: app.db}

	app.logger.Info("services initialized",
		"password_mode", app.cfg.PasswordMode,
		"login_attempts", app.cfg.LoginAttempts,
	)
	return nil
}
