package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDetailsDoesNotMutateSentinel(t *testing.T) {
	detailed := ErrValidation.WithDetails(map[string]interface{}{"field": "rating"})

	assert.Nil(t, ErrValidation.Details)
	assert.Equal(t, "rating", detailed.Details["field"])
	assert.True(t, Is(detailed, ErrValidation))
}

func TestIsMatchesWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("delete day: %w", ErrDayNotFound)

	assert.True(t, Is(wrapped, ErrDayNotFound))
	assert.False(t, Is(wrapped, ErrItemNotFound))

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)
}
