package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	t.Run("single message", func(t *testing.T) {
		t.Parallel()
		err := NewFieldError("email", "The email has already been taken.")

		assert.True(t, err.HasErrors())
		assert.Equal(t, "The email has already been taken.", err.Summary())
		assert.Equal(t, map[string][]string{"email": {"The email has already been taken."}}, err.Fields())
	})

	t.Run("summary counts remaining messages", func(t *testing.T) {
		t.Parallel()
		err := NewValidationError()
		err.Add("title", "The title field is required.")
		err.Add("content", "The content field is required.")
		assert.Equal(t, "The title field is required. (and 1 more error)", err.Summary())

		err.Add("status", "The status field is required.")
		assert.Equal(t, "The title field is required. (and 2 more errors)", err.Summary())
		assert.Equal(t, []string{"title", "content", "status"}, err.FieldNames())
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		err := NewValidationError()
		assert.False(t, err.HasErrors())
		assert.Equal(t, "validation failed", err.Summary())
	})

	t.Run("unwraps to ErrValidation", func(t *testing.T) {
		t.Parallel()
		wrapped := fmt.Errorf("registering user: %w", NewFieldError("name", "bad"))

		assert.True(t, errors.Is(wrapped, ErrValidation))
		var verr *ValidationError
		assert.True(t, errors.As(wrapped, &verr))
		assert.Equal(t, "validation failed: name: bad", verr.Error())
	})

	t.Run("fields returns a copy", func(t *testing.T) {
		t.Parallel()
		err := NewFieldError("title", "one")
		fields := err.Fields()
		fields["title"][0] = "mutated"
		assert.Equal(t, "one", err.Fields()["title"][0])
	})
}
