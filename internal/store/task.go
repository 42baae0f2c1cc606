package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/todo-api/internal/domain"
)

// TaskStore defines the interface for task data persistence. Every task
// returned by the store has its Owner projection populated.
type TaskStore interface {
	// List returns all tasks ordered by ID. An empty store yields an empty,
	// non-nil slice.
	List(ctx context.Context) ([]*domain.Task, error)

	// Create saves a new task and assigns its ID and timestamps.
	// Returns ErrInvalidEntity if the task fails validation or references
	// a user that does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Update replaces the title, content, status and user of an existing task
	// and refreshes UpdatedAt.
	// Returns ErrTaskNotFound if the task does not exist.
	// Returns ErrInvalidEntity if the new user does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete permanently removes a task.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
