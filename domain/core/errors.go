package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound       = errors.New("resource not found")
	ErrResultNotFound = fmt.Errorf("%w: result", ErrNotFound)

	// Sample errors
	ErrEmptySample    = errors.New("sample is empty")
	ErrNonFinite      = errors.New("sample contains NaN or infinite values")
	ErrZeroVariance   = errors.New("sample has zero variance")
	ErrSampleTooLarge = errors.New("sample too large")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewNonFiniteError(index int, value float64) error {
	return fmt.Errorf("%w: observation %d is %v", ErrNonFinite, index, value)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsSampleError reports whether err rejects the observations themselves.
func IsSampleError(err error) bool {
	return errors.Is(err, ErrEmptySample) ||
		errors.Is(err, ErrNonFinite) ||
		errors.Is(err, ErrZeroVariance) ||
		errors.Is(err, ErrSampleTooLarge)
}
