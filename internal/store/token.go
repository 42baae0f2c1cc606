package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
)

// TokenStore defines the interface for access token persistence.
type TokenStore interface {
	// Create saves a newly issued token and assigns CreatedAt.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, token *domain.AuthToken) error

	// GetByID retrieves a token by its ID.
	// Returns ErrTokenNotFound if the token does not exist or was revoked.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AuthToken, error)

	// Touch records that the token was used at the given time.
	// Returns ErrTokenNotFound if the token does not exist.
	Touch(ctx context.Context, id uuid.UUID, usedAt time.Time) error

	// Delete revokes a single token. Other tokens of the same user are untouched.
	// Returns ErrTokenNotFound if the token does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes every token whose expiry is not after now and
	// returns the number of removed rows.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)

	// WithTx returns a new TokenStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TokenStore
}
