// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "ledger-service/internal/api"
	"ledger-service/internal/api/handler"
	"ledger-service/internal/config"
	"ledger-service/internal/repository"
	"ledger-service/internal/repository/memory"
	"ledger-service/internal/repository/postgres"
	"ledger-service/internal/service"
	"ledger-service/internal/telemetry"
	"ledger-service/internal/util"
	"ledger-service/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB // nil when STORAGE_DRIVER=memory

	// Repositories
	UserRepository        repository.UserRepository
	TransactionRepository repository.TransactionRepository

	// Services
	TransactionService service.TransactionService

	// HTTP API
	HTTPHandler http.Handler

	shutdownTracer telemetry.ShutdownFunc
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{Logger: util.GetLogger()}
}

// Initialize loads the configuration from the environment and initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	return app.InitializeWithConfig(ctx, cfg)
}

// InitializeWithConfig initializes all application components from cfg.
func (app *Application) InitializeWithConfig(ctx context.Context, cfg *config.AppConfig) error {
	app.Config = cfg

	// 1. Initialize Logger
	util.InitLogger(cfg.LogLevel)
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.", "storage", cfg.StorageDriver)

	// 2. Tracing
	shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.OTLPEndpoint, cfg.Telemetry.ServiceName)
	if err != nil {
		return fmt.Errorf("failed to initialize tracer: %w", err)
	}
	app.shutdownTracer = shutdown

	// 3. Storage and repositories
	if err := app.initRepositories(ctx); err != nil {
		return err
	}
	app.Logger.Info("Repositories initialized.")

	// 4. Initialize Services
	app.TransactionService = service.NewTransactionService(app.TransactionRepository, app.UserRepository, app.Logger)
	app.Logger.Info("Services initialized.")

	// 5. Initialize HTTP Handlers and Router
	app.HTTPHandler = router.NewRouter(
		handler.NewTransactionHandler(app.TransactionService, app.Logger),
		handler.NewUserHandler(app.TransactionService, app.Logger),
	)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

func (app *Application) initRepositories(ctx context.Context) error {
	if app.Config.StorageDriver == config.StorageDriverMemory {
		store := memory.NewStore()
		app.UserRepository = memory.NewUserRepository(store)
		app.TransactionRepository = memory.NewTransactionRepository(store)
		return nil
	}

	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	if app.Config.AutoMigrate {
		if err := db.Migrate(ctx, app.DB); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		app.Logger.Info("Database migrations applied.")
	}

	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.TransactionRepository = postgres.NewTransactionRepository(app.DB)
	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.shutdownTracer != nil {
		if err := app.shutdownTracer(ctx); err != nil {
			app.Logger.Error("Failed to flush traces", "error", err)
		}
	}
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
