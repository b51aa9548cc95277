package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionError(t *testing.T) {
	err := fmt.Errorf("order o-1: %w", &TransitionError{From: "preparing", To: "delivered"})

	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "cannot change status from preparing to delivered")

	var te *TransitionError
	assert.True(t, errors.As(err, &te))
	assert.Equal(t, "preparing", te.From)
	assert.Equal(t, "delivered", te.To)
}

func TestWrappers(t *testing.T) {
	nf := NotFound("recipe with ID %s not found or not available", "r-9")
	assert.True(t, errors.Is(nf, ErrNotFound))
	assert.Contains(t, nf.Error(), "r-9")

	in := InvalidInput("number of people must be between %d and %d", 1, 20)
	assert.True(t, errors.Is(in, ErrInvalidInput))
	assert.Contains(t, in.Error(), "between 1 and 20")
}
