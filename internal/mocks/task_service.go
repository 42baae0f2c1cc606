package mocks

import (
	"context"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/stretchr/testify/mock"
)

// TestifyMockTaskService is a mock of service.TaskService for use with testify/mock
type TestifyMockTaskService struct {
	mock.Mock
}

// Ensure TestifyMockTaskService implements service.TaskService
var _ service.TaskService = (*TestifyMockTaskService)(nil)

// ListTasks is a mock implementation of service.TaskService.ListTasks
func (m *TestifyMockTaskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	args := m.Called(ctx)
	tasks, _ := args.Get(0).([]*domain.Task)
	return tasks, args.Error(1)
}

// CreateTask is a mock implementation of service.TaskService.CreateTask
func (m *TestifyMockTaskService) CreateTask(ctx context.Context, input service.TaskInput) (*domain.Task, error) {
	args := m.Called(ctx, input)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

// GetTask is a mock implementation of service.TaskService.GetTask
func (m *TestifyMockTaskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	args := m.Called(ctx, id)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

// UpdateTask is a mock implementation of service.TaskService.UpdateTask
func (m *TestifyMockTaskService) UpdateTask(ctx context.Context, id int64, input service.TaskInput) error {
	args := m.Called(ctx, id, input)
	return args.Error(0)
}

// DeleteTask is a mock implementation of service.TaskService.DeleteTask
func (m *TestifyMockTaskService) DeleteTask(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
