package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   int64
		want    TaskStatus
		wantErr bool
	}{
		{name: "pending", input: 1, want: TaskStatusPending},
		{name: "in progress", input: 2, want: TaskStatusInProgress},
		{name: "completed", input: 3, want: TaskStatusCompleted},
		{name: "zero", input: 0, wantErr: true},
		{name: "above range", input: 4, wantErr: true},
		{name: "negative", input: -1, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseTaskStatus(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidTaskStatus))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTaskStatusName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Pending", TaskStatusPending.Name())
	assert.Equal(t, "In Progress", TaskStatusInProgress.Name())
	assert.Equal(t, "Completed", TaskStatusCompleted.Name())
	assert.Empty(t, TaskStatus(9).Name())
	assert.Equal(t, "TaskStatus(9)", TaskStatus(9).String())
}

func TestTaskStatusScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     any
		want    TaskStatus
		wantErr bool
	}{
		{name: "int64", src: int64(2), want: TaskStatusInProgress},
		{name: "int32", src: int32(3), want: TaskStatusCompleted},
		{name: "bytes", src: []byte("1"), want: TaskStatusPending},
		{name: "string", src: "2", want: TaskStatusInProgress},
		{name: "unknown stored value", src: int64(7), wantErr: true},
		{name: "null", src: nil, wantErr: true},
		{name: "garbage bytes", src: []byte("x"), wantErr: true},
		{name: "unsupported type", src: 1.5, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var s TaskStatus
			err := s.Scan(tt.src)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTaskStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestTaskStatusValue(t *testing.T) {
	t.Parallel()

	v, err := TaskStatusCompleted.Value()
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)

	_, err = TaskStatus(0).Value()
	assert.ErrorIs(t, err, ErrInvalidTaskStatus, "invalid statuses must never be written")
}
