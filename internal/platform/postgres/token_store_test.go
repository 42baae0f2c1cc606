package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/postgres"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokenColumns = []string{"id", "user_id", "name", "token_hash", "last_used_at", "expires_at", "created_at"}

func TestPostgresTokenStore_Create(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	tokenStore := postgres.NewPostgresTokenStore(db, nil)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO personal_access_tokens")).
		WithArgs(id.String(), int64(1), domain.TokenNameLogin, "abc", nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	token := &domain.AuthToken{ID: id, UserID: 1, Name: domain.TokenNameLogin, TokenHash: "abc"}
	require.NoError(t, tokenStore.Create(context.Background(), token))
	assert.Equal(t, now, token.CreatedAt)
}

func TestPostgresTokenStore_GetByID(t *testing.T) {
	t.Parallel()

	t.Run("found with nullable timestamps", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		tokenStore := postgres.NewPostgresTokenStore(db, nil)
		id := uuid.New()
		now := time.Now().UTC()

		mock.ExpectQuery(regexp.QuoteMeta("FROM personal_access_tokens")).
			WithArgs(id.String()).
			WillReturnRows(sqlmock.NewRows(tokenColumns).
				AddRow(id.String(), int64(1), "api-token", "abc", now, nil, now))

		token, err := tokenStore.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, token.ID)
		require.NotNil(t, token.LastUsedAt)
		assert.Equal(t, now, *token.LastUsedAt)
		assert.Nil(t, token.ExpiresAt)
	})

	t.Run("revoked", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		tokenStore := postgres.NewPostgresTokenStore(db, nil)

		mock.ExpectQuery(regexp.QuoteMeta("FROM personal_access_tokens")).
			WillReturnRows(sqlmock.NewRows(tokenColumns))

		_, err := tokenStore.GetByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, store.ErrTokenNotFound)
	})
}

func TestPostgresTokenStore_TouchAndDelete(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	tokenStore := postgres.NewPostgresTokenStore(db, nil)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE personal_access_tokens SET last_used_at")).
		WithArgs(sqlmock.AnyArg(), id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM personal_access_tokens WHERE id = $1")).
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM personal_access_tokens WHERE id = $1")).
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ctx := context.Background()
	require.NoError(t, tokenStore.Touch(ctx, id, time.Now()))
	require.NoError(t, tokenStore.Delete(ctx, id))
	assert.ErrorIs(t, tokenStore.Delete(ctx, id), store.ErrTokenNotFound)
}

func TestPostgresTokenStore_DeleteExpired(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	tokenStore := postgres.NewPostgresTokenStore(db, nil)

	mock.ExpectExec(regexp.QuoteMeta("expires_at IS NOT NULL AND expires_at <= $1")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := tokenStore.DeleteExpired(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
