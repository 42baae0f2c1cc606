package api

import (
	"testing"
	"time"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskToResponse(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 600000000, time.FixedZone("CET", 3600))
	task := &domain.Task{
		ID:        10,
		Title:     "Title",
		Content:   "Content",
		Status:    domain.TaskStatusCompleted,
		UserID:    4,
		Owner:     domain.TaskOwner{ID: 4, Name: "Ada", Email: "ada@example.com"},
		CreatedAt: created,
		UpdatedAt: created,
	}

	resp := taskToResponse(task)

	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, 3, resp.Status)
	assert.Equal(t, "Completed", resp.StatusName)
	assert.Equal(t, TaskOwnerResponse{ID: 4, Name: "Ada", Email: "ada@example.com"}, resp.User)
	assert.Equal(t, "2025-01-02T02:04:05.600000Z", resp.CreatedAt)
}

func TestTasksToResponseEmpty(t *testing.T) {
	resp := tasksToResponse(nil)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestTaskRequestToInput(t *testing.T) {
	userID, status := int64(2), int64(3)
	req := TaskRequest{Title: "t", Content: "c", UserID: &userID, Status: &status}

	input, err := req.toInput()
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusCompleted, input.Status)
	assert.Equal(t, int64(2), input.UserID)

	bad := int64(7)
	req.Status = &bad
	_, err = req.toInput()
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRequestNormalize(t *testing.T) {
	reg := RegisterRequest{Name: " Ada ", Email: " ada@example.com ", Password: " secret ", PasswordConfirmation: " secret "}
	reg.Normalize()
	assert.Equal(t, "Ada", reg.Name)
	assert.Equal(t, "ada@example.com", reg.Email)
	assert.Equal(t, " secret ", reg.Password)

	task := TaskRequest{Title: "  t  ", Content: "\tc\n"}
	task.Normalize()
	assert.Equal(t, "t", task.Title)
	assert.Equal(t, "c", task.Content)
}
