package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/postgres"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/service/auth"
	"github.com/phrazzld/todo-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore  store.UserStore
	taskStore  store.TaskStore
	tokenStore store.TokenStore

	authService auth.Service
	taskService service.TaskService
}

// stores groups the persistence dependencies so tests can substitute them.
type stores struct {
	users  store.UserStore
	tasks  store.TaskStore
	tokens store.TokenStore
}

// newApplication creates a new application instance backed by PostgreSQL stores.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	return buildApplication(cfg, logger, db, stores{
		users:  postgres.NewPostgresUserStore(db, logger),
		tasks:  postgres.NewPostgresTaskStore(db, logger),
		tokens: postgres.NewPostgresTokenStore(db, logger),
	})
}

// buildApplication wires services on top of the given stores.
func buildApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB, s stores) (*application, error) {
	app := &application{
		config:     cfg,
		logger:     logger,
		db:         db,
		userStore:  s.users,
		taskStore:  s.tasks,
		tokenStore: s.tokens,
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.authService, err = auth.NewService(auth.Options{
		DB:            db,
		UserStore:     app.userStore,
		TokenStore:    app.tokenStore,
		JWTService:    jwtService,
		Hasher:        hasher,
		Verifier:      hasher,
		TokenLifetime: cfg.Auth.TokenLifetime(),
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}
	logger.Info("Authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes,
		"bcrypt_cost", hasher.Cost())

	app.taskService, err = service.NewTaskService(app.taskStore, app.userStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the HTTP server and blocks until ctx is canceled or the server fails.
// Expired tokens are pruned in the background when tokens can expire.
func (app *application) Run(ctx context.Context) error {
	if app.config.Auth.TokenLifetime() > 0 && app.config.Auth.PruneInterval() > 0 {
		stop := app.startTokenPruner(ctx, app.config.Auth.PruneInterval())
		defer stop()
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
