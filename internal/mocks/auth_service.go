package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service/auth"
	"github.com/stretchr/testify/mock"
)

// TestifyMockAuthService is a mock of auth.Service for use with testify/mock
type TestifyMockAuthService struct {
	mock.Mock
}

// Ensure TestifyMockAuthService implements auth.Service
var _ auth.Service = (*TestifyMockAuthService)(nil)

// Register is a mock implementation of auth.Service.Register
func (m *TestifyMockAuthService) Register(
	ctx context.Context,
	input auth.RegisterInput,
) (*domain.User, string, error) {
	args := m.Called(ctx, input)
	user, _ := args.Get(0).(*domain.User)
	return user, args.String(1), args.Error(2)
}

// Login is a mock implementation of auth.Service.Login
func (m *TestifyMockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

// Logout is a mock implementation of auth.Service.Logout
func (m *TestifyMockAuthService) Logout(ctx context.Context, tokenID uuid.UUID) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

// Authenticate is a mock implementation of auth.Service.Authenticate
func (m *TestifyMockAuthService) Authenticate(ctx context.Context, bearer string) (*auth.Principal, error) {
	args := m.Called(ctx, bearer)
	principal, _ := args.Get(0).(*auth.Principal)
	return principal, args.Error(1)
}

// PruneExpired is a mock implementation of auth.Service.PruneExpired
func (m *TestifyMockAuthService) PruneExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
