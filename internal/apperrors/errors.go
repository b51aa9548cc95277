package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers missing, foreign-owned and unavailable entities.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput covers malformed or out-of-range values.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidTransition is returned when an order status change is not allowed.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrConflict signals a lost race at a uniqueness boundary.
	ErrConflict = errors.New("conflict")
)

// TransitionError names the rejected status change.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
}

// Is lets errors.Is(err, ErrInvalidTransition) match.
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// NotFound wraps ErrNotFound with an entity description.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// InvalidInput wraps ErrInvalidInput with a description of the bad value.
func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidInput)
}
