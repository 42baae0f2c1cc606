package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/store"
)

// TaskInput carries the validated fields of a create or update request.
// Every field is required; updates replace the whole task.
type TaskInput struct {
	Title   string
	Content string
	UserID  int64
	Status  domain.TaskStatus
}

// TaskService provides task-related operations
type TaskService interface {
	// ListTasks returns every task with its owner, ordered by id.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// CreateTask stores a new task. Returns a *domain.ValidationError on the
	// user_id field when the owner does not exist.
	CreateTask(ctx context.Context, input TaskInput) (*domain.Task, error)

	// GetTask retrieves a task with its owner.
	// Returns ErrTaskNotFound if the task does not exist.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// UpdateTask replaces every field of the task identified by id.
	// The owner is checked before the task itself, so an unknown user is
	// reported as a validation error even when the task is also missing.
	UpdateTask(ctx context.Context, id int64, input TaskInput) error

	// DeleteTask permanently removes a task.
	// Returns ErrTaskNotFound if the task does not exist.
	DeleteTask(ctx context.Context, id int64) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	tasks  store.TaskStore
	users  store.UserStore
	logger *slog.Logger
}

// Ensure taskServiceImpl implements TaskService interface
var _ TaskService = (*taskServiceImpl)(nil)

// NewTaskService creates a new TaskService.
func NewTaskService(tasks store.TaskStore, users store.UserStore, log *slog.Logger) (TaskService, error) {
	if tasks == nil {
		return nil, errors.New("task store cannot be nil")
	}
	if users == nil {
		return nil, errors.New("user store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &taskServiceImpl{
		tasks:  tasks,
		users:  users,
		logger: log.With(slog.String("component", "task_service")),
	}, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list tasks",
			slog.String("error", err.Error()))
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(ctx context.Context, input TaskInput) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.ensureUserExists(ctx, input.UserID); err != nil {
		return nil, err
	}

	task, err := domain.NewTask(input.Title, input.Content, input.Status, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			// The owner disappeared between the check and the insert.
			return nil, domain.NewFieldError("user_id", MsgUserIDInvalid)
		}
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.Int64("user_id", input.UserID))
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	log.Info("task created",
		slog.Int64("task_id", task.ID),
		slog.Int64("user_id", task.UserID))
	return task, nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if id <= 0 {
		return nil, ErrTaskNotFound
	}
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to get task",
				slog.String("error", err.Error()),
				slog.Int64("task_id", id))
		}
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}
	return task, nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(ctx context.Context, id int64, input TaskInput) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.ensureUserExists(ctx, input.UserID); err != nil {
		return err
	}
	if id <= 0 {
		return ErrTaskNotFound
	}

	task := &domain.Task{
		ID:      id,
		Title:   input.Title,
		Content: input.Content,
		Status:  input.Status,
		UserID:  input.UserID,
	}
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			return domain.NewFieldError("user_id", MsgUserIDInvalid)
		}
		if !errors.Is(err, store.ErrTaskNotFound) {
			log.Error("failed to update task",
				slog.String("error", err.Error()),
				slog.Int64("task_id", id))
		}
		return NewTaskServiceError("update_task", "failed to update task", err)
	}

	log.Info("task updated", slog.Int64("task_id", id))
	return nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrTaskNotFound
	}
	if err := s.tasks.Delete(ctx, id); err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete task",
				slog.String("error", err.Error()),
				slog.Int64("task_id", id))
		}
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("task deleted", slog.Int64("task_id", id))
	return nil
}

// ensureUserExists reports a user_id validation error for unknown owners.
func (s *taskServiceImpl) ensureUserExists(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return domain.NewFieldError("user_id", MsgUserIDInvalid)
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return domain.NewFieldError("user_id", MsgUserIDInvalid)
		}
		return NewTaskServiceError("check_user", "failed to look up task owner", err)
	}
	return nil
}
