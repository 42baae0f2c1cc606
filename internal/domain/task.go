package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxTitleLength is the maximum number of characters allowed in a task title.
const MaxTitleLength = 255

// TaskOwner is the projection of a User attached to a Task for display.
// It never carries credentials or timestamps.
type TaskOwner struct {
	ID    int64
	Name  string
	Email string
}

// Task is a unit of work that belongs to a user and carries a status.
type Task struct {
	ID        int64
	Title     string
	Content   string
	Status    TaskStatus
	UserID    int64
	Owner     TaskOwner
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTask builds a Task from already validated input and checks the
// entity invariants. Timestamps are assigned by the store.
func NewTask(title, content string, status TaskStatus, userID int64) (*Task, error) {
	task := &Task{
		Title:   title,
		Content: content,
		Status:  status,
		UserID:  userID,
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}
	return task, nil
}

// Validate checks the Task invariants.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(t.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if strings.TrimSpace(t.Content) == "" {
		return ErrEmptyContent
	}
	if !t.Status.Valid() {
		return ErrInvalidTaskStatus
	}
	if t.UserID <= 0 {
		return ErrInvalidUserID
	}
	return nil
}

// StatusName returns the label derived from the task's status.
func (t *Task) StatusName() string {
	return t.Status.Name()
}
