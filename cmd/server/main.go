// Package main implements the entry point for the todo API server. It exposes
// the HTTP server, schema migrations and token maintenance as cobra commands.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. A fresh tree per call keeps tests
// independent of each other's flags and args.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "todo-api",
		Short:         "Authenticated task management API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newPruneTokensCmd(),
	)
	return rootCmd
}

// initializeApp loads the .env file if present, then configuration, and
// sets up structured logging using the configured log level.
func initializeApp() (*config.Config, *slog.Logger, error) {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		log.Warn("failed to read .env file", "error", envErr)
	}

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	return cfg, log, nil
}
