package domain

import (
	"database/sql/driver"
	"fmt"
	"strconv"
)

// TaskStatus is the lifecycle state of a Task. It is a flat enum: any status
// may be replaced by any other through an update.
type TaskStatus int

// Task status values as stored and exchanged over the API.
const (
	TaskStatusPending    TaskStatus = 1
	TaskStatusInProgress TaskStatus = 2
	TaskStatusCompleted  TaskStatus = 3
)

var taskStatusNames = map[TaskStatus]string{
	TaskStatusPending:    "Pending",
	TaskStatusInProgress: "In Progress",
	TaskStatusCompleted:  "Completed",
}

// ParseTaskStatus converts a raw integer into a TaskStatus, rejecting any
// value outside the defined set.
func ParseTaskStatus(v int64) (TaskStatus, error) {
	s := TaskStatus(v)
	if !s.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTaskStatus, v)
	}
	return s, nil
}

// Valid reports whether s is one of the defined statuses.
func (s TaskStatus) Valid() bool {
	_, ok := taskStatusNames[s]
	return ok
}

// Name returns the human-readable label for s, or an empty string when s is
// not a defined status.
func (s TaskStatus) Name() string {
	return taskStatusNames[s]
}

func (s TaskStatus) String() string {
	if name, ok := taskStatusNames[s]; ok {
		return name
	}
	return "TaskStatus(" + strconv.Itoa(int(s)) + ")"
}

// Scan implements sql.Scanner. Stored values are parsed strictly so a row
// holding an unknown status surfaces as an error instead of leaking through.
func (s *TaskStatus) Scan(src any) error {
	var raw int64
	switch v := src.(type) {
	case int64:
		raw = v
	case int32:
		raw = int64(v)
	case int16:
		raw = int64(v)
	case int:
		raw = int64(v)
	case []byte:
		n, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTaskStatus, v)
		}
		raw = n
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTaskStatus, v)
		}
		raw = n
	case nil:
		return fmt.Errorf("%w: NULL", ErrInvalidTaskStatus)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTaskStatus, src)
	}

	parsed, err := ParseTaskStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Value implements driver.Valuer. Invalid statuses are never written.
func (s TaskStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTaskStatus, int(s))
	}
	return int64(s), nil
}
