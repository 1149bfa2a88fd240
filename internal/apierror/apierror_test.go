package apierror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidation(map[string]string{"name": "required", "price": "min"})
	// Fields are sorted so the message is deterministic regardless of map order.
	assert.Equal(t, "validation failed: name: required; price: min", err.Error())

	empty := NewValidation(nil)
	assert.Equal(t, "validation failed", empty.Error())
}

func TestIsValidation(t *testing.T) {
	err := NewValidation(map[string]string{"category": "oneof"})
	assert.True(t, IsValidation(err))
	assert.True(t, IsValidation(fmt.Errorf("create: %w", err)))
	assert.False(t, IsValidation(errors.New("boom")))
	assert.False(t, IsValidation(ErrNotFound))
}

func TestNotFoundSentinel(t *testing.T) {
	wrapped := fmt.Errorf("find product 42: %w", ErrNotFound)
	assert.ErrorIs(t, wrapped, ErrNotFound)
}
