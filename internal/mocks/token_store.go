package mocks

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

// MockTokenStore implements store.TokenStore for testing
type MockTokenStore struct {
	CreateFn        func(ctx context.Context, token *domain.AuthToken) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.AuthToken, error)
	TouchFn         func(ctx context.Context, id uuid.UUID, usedAt time.Time) error
	DeleteFn        func(ctx context.Context, id uuid.UUID) error
	DeleteExpiredFn func(ctx context.Context, now time.Time) (int64, error)

	Tokens      map[uuid.UUID]*domain.AuthToken
	CreateError error
	TouchError  error

	mu sync.Mutex
}

// Ensure MockTokenStore implements store.TokenStore
var _ store.TokenStore = (*MockTokenStore)(nil)

// NewMockTokenStore creates a new mock store with initialized defaults
func NewMockTokenStore() *MockTokenStore {
	return &MockTokenStore{
		Tokens: make(map[uuid.UUID]*domain.AuthToken),
	}
}

// Create implements the TokenStore interface
func (m *MockTokenStore) Create(ctx context.Context, token *domain.AuthToken) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, token)
	}
	if m.CreateError != nil {
		return m.CreateError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	token.CreatedAt = time.Now().UTC()
	stored := *token
	m.Tokens[token.ID] = &stored
	return nil
}

// GetByID implements the TokenStore interface
func (m *MockTokenStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.AuthToken, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	token, ok := m.Tokens[id]
	if !ok {
		return nil, store.ErrTokenNotFound
	}
	out := *token
	return &out, nil
}

// Touch implements the TokenStore interface
func (m *MockTokenStore) Touch(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	if m.TouchFn != nil {
		return m.TouchFn(ctx, id, usedAt)
	}
	if m.TouchError != nil {
		return m.TouchError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	token, ok := m.Tokens[id]
	if !ok {
		return store.ErrTokenNotFound
	}
	used := usedAt
	token.LastUsedAt = &used
	return nil
}

// Delete implements the TokenStore interface
func (m *MockTokenStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.Tokens[id]; !ok {
		return store.ErrTokenNotFound
	}
	delete(m.Tokens, id)
	return nil
}

// DeleteExpired implements the TokenStore interface
func (m *MockTokenStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if m.DeleteExpiredFn != nil {
		return m.DeleteExpiredFn(ctx, now)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int64
	for id, token := range m.Tokens {
		if token.IsExpired(now) {
			delete(m.Tokens, id)
			removed++
		}
	}
	return removed, nil
}

// WithTx implements the TokenStore interface; the mock ignores the transaction.
func (m *MockTokenStore) WithTx(tx *sql.Tx) store.TokenStore {
	return m
}

// Len returns the number of stored tokens.
func (m *MockTokenStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Tokens)
}
