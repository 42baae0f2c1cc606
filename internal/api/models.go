package api

import (
	"strings"
	"time"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service"
)

// Response messages
const (
	MsgRegistered         = "User successfully registered"
	MsgLoggedOut          = "Logged out successfully"
	MsgTaskUpdated        = "Task updated successfully"
	MsgInvalidCredentials = "The provided credentials are incorrect."
	MsgEmailTaken         = "The email has already been taken."
	MsgInvalidRequest     = "Invalid request format"
	MsgUnexpectedError    = "An unexpected error occurred"
)

// timestampLayout renders times with microseconds in UTC, e.g. 2024-05-01T10:00:00.000000Z.
const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name                 string `json:"name"                  validate:"required,max=255"`
	Email                string `json:"email"                 validate:"required,email,max=255"`
	Password             string `json:"password"              validate:"required,min=8,maxbytes=72,confirmed"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// Normalize trims surrounding whitespace from every field except the passwords.
func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

// TaskRequest defines the payload for creating and replacing a task.
// All fields are required on both operations.
type TaskRequest struct {
	Title   string `json:"title"   validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
	UserID  *int64 `json:"user_id" validate:"required,gt=0"`
	Status  *int64 `json:"status"  validate:"required,oneof=1 2 3"`
}

func (r *TaskRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
}

// toInput converts a validated request into the service input.
func (r *TaskRequest) toInput() (service.TaskInput, error) {
	status, err := domain.ParseTaskStatus(*r.Status)
	if err != nil {
		return service.TaskInput{}, domain.NewFieldError("status", "The selected status is invalid.")
	}
	return service.TaskInput{
		Title:   r.Title,
		Content: r.Content,
		UserID:  *r.UserID,
		Status:  status,
	}, nil
}

// UserResponse is the public representation of a user.
type UserResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// RegisterResponse defines the successful response for the registration endpoint.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	Token string `json:"token"`
}

// MessageResponse carries a single confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse carries the id of a newly created resource.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// TaskOwnerResponse is the owner projection embedded in a task.
type TaskOwnerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TaskResponse is the public representation of a task.
type TaskResponse struct {
	ID         int64             `json:"id"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	Status     int               `json:"status"`
	StatusName string            `json:"status_name"`
	UserID     int64             `json:"user_id"`
	User       TaskOwnerResponse `json:"user"`
	CreatedAt  string            `json:"created_at"`
	UpdatedAt  string            `json:"updated_at"`
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: formatTimestamp(user.CreatedAt),
		UpdatedAt: formatTimestamp(user.UpdatedAt),
	}
}

func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:         task.ID,
		Title:      task.Title,
		Content:    task.Content,
		Status:     int(task.Status),
		StatusName: task.StatusName(),
		UserID:     task.UserID,
		User: TaskOwnerResponse{
			ID:    task.Owner.ID,
			Name:  task.Owner.Name,
			Email: task.Owner.Email,
		},
		CreatedAt: formatTimestamp(task.CreatedAt),
		UpdatedAt: formatTimestamp(task.UpdatedAt),
	}
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}
