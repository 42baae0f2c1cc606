package testutils

import (
	"context"
	"fmt"
	"testing"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plaintext password of users created by MustInsertUser.
const TestPassword = "password123"

// MustInsertUser inserts a user with TestPassword and returns its ID.
// SQL is executed directly to avoid a dependency on the store implementations.
func MustInsertUser(ctx context.Context, t *testing.T, db store.DBTX, email string) int64 {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	require.NoError(t, err, "Failed to hash password")

	var id int64
	err = db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id
	`, "Test User", email, string(hashedPassword)).Scan(&id)
	require.NoError(t, err, "Failed to insert test user")

	return id
}

// MustInsertTask inserts a task owned by userID and returns its ID.
func MustInsertTask(ctx context.Context, t *testing.T, db store.DBTX, userID int64, status domain.TaskStatus) int64 {
	t.Helper()

	var id int64
	err := db.QueryRowContext(ctx, `
		INSERT INTO tasks (title, content, status, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, "Fixture task", "Fixture content", int64(status), userID).Scan(&id)
	require.NoError(t, err, "Failed to insert test task")

	return id
}

// CountRows counts rows in table matching the optional where clause.
func CountRows(ctx context.Context, t *testing.T, db store.DBTX, table, whereClause string, args ...any) int {
	t.Helper()

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	if whereClause != "" {
		query += " WHERE " + whereClause
	}

	var count int
	err := db.QueryRowContext(ctx, query, args...).Scan(&count)
	require.NoError(t, err, "Failed to count rows in %s", table)

	return count
}
