package testutils

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/todo-api/internal/platform/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// OpenTestDB connects to dbURL, verifies the connection and applies all
// migrations. The caller owns the returned connection.
func OpenTestDB(ctx context.Context, dbURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := postgres.Migrate(ctx, db, slog.Default(), postgres.MigrateUp); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// GetTestDBWithT returns a migrated database connection that is closed when
// the test finishes. The test is skipped when DATABASE_URL is not set.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()
	SkipIfNoDatabase(t)

	db, err := OpenTestDB(context.Background(), GetTestDatabaseURL(t))
	require.NoError(t, err, "Failed to prepare test database")
	t.Cleanup(func() { AssertCloseNoError(t, db) })
	return db
}

// WithTx runs fn inside a transaction that is always rolled back, isolating
// the test's writes from other tests.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	defer AssertRollbackNoError(t, tx)

	fn(t, tx)
}

// AssertRollbackNoError rolls back tx, ignoring transactions that are already done.
func AssertRollbackNoError(t *testing.T, tx *sql.Tx) {
	t.Helper()
	if tx == nil {
		return
	}
	err := tx.Rollback()
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		assert.NoError(t, err, "Failed to rollback transaction")
	}
}

// AssertCloseNoError closes db and reports a failure if closing errors.
func AssertCloseNoError(t *testing.T, db *sql.DB) {
	t.Helper()
	if db == nil {
		return
	}
	assert.NoError(t, db.Close(), "Failed to close database")
}
