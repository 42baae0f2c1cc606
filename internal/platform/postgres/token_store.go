package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/store"
)

// PostgresTokenStore implements the store.TokenStore interface
// on the personal_access_tokens table.
type PostgresTokenStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// Ensure PostgresTokenStore implements store.TokenStore interface
var _ store.TokenStore = (*PostgresTokenStore)(nil)

// NewPostgresTokenStore creates a new PostgreSQL implementation of the TokenStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresTokenStore(db store.DBTX, logger *slog.Logger) *PostgresTokenStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTokenStore{
		db:     db,
		logger: logger.With(slog.String("component", "token_store")),
	}
}

// Create implements store.TokenStore.Create.
func (s *PostgresTokenStore) Create(ctx context.Context, token *domain.AuthToken) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO personal_access_tokens (id, user_id, name, token_hash, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		token.ID,
		token.UserID,
		token.Name,
		token.TokenHash,
		nullTime(token.ExpiresAt),
	).Scan(&token.CreatedAt)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during token creation",
				slog.Int64("user_id", token.UserID))
			return fmt.Errorf("%w: user with ID %d not found", store.ErrInvalidEntity, token.UserID)
		}
		log.Error("failed to create token",
			slog.String("error", err.Error()),
			slog.Int64("user_id", token.UserID))
		return store.NewStoreError("token", "create", "failed to insert token", MapError(err))
	}

	log.Debug("token created",
		slog.String("token_id", token.ID.String()),
		slog.Int64("user_id", token.UserID),
		slog.String("name", token.Name))
	return nil
}

// GetByID implements store.TokenStore.GetByID.
func (s *PostgresTokenStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.AuthToken, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, name, token_hash, last_used_at, expires_at, created_at
		FROM personal_access_tokens
		WHERE id = $1
	`

	var token domain.AuthToken
	var lastUsedAt, expiresAt sql.NullTime
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&token.ID,
		&token.UserID,
		&token.Name,
		&token.TokenHash,
		&lastUsedAt,
		&expiresAt,
		&token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("token not found", slog.String("token_id", id.String()))
			return nil, store.ErrTokenNotFound
		}
		log.Error("failed to get token",
			slog.String("error", err.Error()),
			slog.String("token_id", id.String()))
		return nil, store.NewStoreError("token", "get", "failed to query token", MapError(err))
	}

	token.LastUsedAt = timePtr(lastUsedAt)
	token.ExpiresAt = timePtr(expiresAt)
	return &token, nil
}

// Touch implements store.TokenStore.Touch.
func (s *PostgresTokenStore) Touch(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`UPDATE personal_access_tokens SET last_used_at = $1 WHERE id = $2`,
		usedAt.UTC(), id)
	if err != nil {
		log.Error("failed to update token last_used_at",
			slog.String("error", err.Error()),
			slog.String("token_id", id.String()))
		return store.NewStoreError("token", "touch", "failed to update token", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrTokenNotFound)
}

// Delete implements store.TokenStore.Delete.
func (s *PostgresTokenStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM personal_access_tokens WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete token",
			slog.String("error", err.Error()),
			slog.String("token_id", id.String()))
		return store.NewStoreError("token", "delete", "failed to delete token", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrTokenNotFound); err != nil {
		return err
	}

	log.Info("token revoked", slog.String("token_id", id.String()))
	return nil
}

// DeleteExpired implements store.TokenStore.DeleteExpired.
func (s *PostgresTokenStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM personal_access_tokens WHERE expires_at IS NOT NULL AND expires_at <= $1`,
		now.UTC())
	if err != nil {
		log.Error("failed to delete expired tokens", slog.String("error", err.Error()))
		return 0, store.NewStoreError("token", "prune", "failed to delete expired tokens", MapError(err))
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	log.Info("expired tokens pruned", slog.Int64("count", n))
	return n, nil
}

// WithTx implements store.TokenStore.WithTx.
func (s *PostgresTokenStore) WithTx(tx *sql.Tx) store.TokenStore {
	return &PostgresTokenStore{
		db:     tx,
		logger: s.logger,
	}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
