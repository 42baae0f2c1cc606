// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of the store and auth interfaces,
// so tests across packages share one set of fakes instead of defining inline
// mocks in individual test files.
//
// Each mock exposes function fields for every interface method. When a
// function field is nil the mock falls back to a simple in-memory
// implementation:
//
//	users := mocks.NewMockUserStore()
//	users.AddUser(&domain.User{Name: "Ada", Email: "ada@example.com"})
//
//	tasks := mocks.NewMockTaskStore(users)
//	tasks.GetByIDFn = func(ctx context.Context, id int64) (*domain.Task, error) {
//	    return nil, store.ErrTaskNotFound
//	}
package mocks
