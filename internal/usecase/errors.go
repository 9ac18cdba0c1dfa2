package usecase

import (
	"context"
	"errors"
	"fmt"
)

// Handlers map these with errors.Is; wrap them with fmt.Errorf("%w: ...").
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// dependencyError classifies a fetch failure as ErrDependencyUnavailable.
// Errors that already carry a sentinel and context errors keep their class.
func dependencyError(op string, err error) error {
	if isClassified(err) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrDependencyUnavailable, op, err)
}

func isClassified(err error) bool {
	for _, target := range []error{
		ErrDependencyUnavailable,
		ErrInvalidInput,
		ErrNotFound,
		context.Canceled,
		context.DeadlineExceeded,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
