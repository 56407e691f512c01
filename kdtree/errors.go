package kdtree

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTree is returned by nearest neighbor queries on an empty tree.
	ErrEmptyTree = errors.New("tree is empty")

	// ErrNoMatch is returned when a search filter rejects every stored point.
	ErrNoMatch = errors.New("no point matches the filter")

	// ErrInvalidCoordinate is returned for points with a NaN or infinite component.
	ErrInvalidCoordinate = errors.New("coordinate component is not finite")

	// ErrCapacityExceeded is returned when the tree cannot address more points.
	ErrCapacityExceeded = errors.New("tree capacity exceeded")

	// ErrInvariantViolation is returned by Validate when the tree is corrupt.
	ErrInvariantViolation = errors.New("invariant violation")
)

// ErrDimensionMismatch is a named error type for dimension mismatch
type ErrDimensionMismatch struct {
	Expected int // Expected dimensions
	Actual   int // Actual dimensions
}

// Error returns the error message for dimension mismatch
func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension is returned when a tree is configured with a dimension below 1.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d (must be >= 1)", e.Dimension)
}

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}
