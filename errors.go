package kdgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/kdgo/kdtree"
)

var (
	// ErrEmptyIndex is returned by nearest neighbor searches on an empty index.
	ErrEmptyIndex = errors.New("index is empty")

	// ErrNoMatch is returned when the search filter rejects every point.
	ErrNoMatch = errors.New("no point matches the filter")

	// ErrInvalidCoordinate is returned for points with a NaN or infinite component.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrCapacityExceeded is returned when the index cannot address more points.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

// ErrDimensionMismatch indicates a point/query dimensionality mismatch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidDimension indicates an invalid configured dimension.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidDimension struct {
	Dimension int
	cause     error
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, kdtree.ErrEmptyTree):
		return fmt.Errorf("%w: %w", ErrEmptyIndex, err)
	case errors.Is(err, kdtree.ErrNoMatch):
		return fmt.Errorf("%w: %w", ErrNoMatch, err)
	case errors.Is(err, kdtree.ErrInvalidCoordinate):
		return fmt.Errorf("%w: %w", ErrInvalidCoordinate, err)
	case errors.Is(err, kdtree.ErrCapacityExceeded):
		return fmt.Errorf("%w: %w", ErrCapacityExceeded, err)
	}

	var dm *kdtree.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}
	var id *kdtree.ErrInvalidDimension
	if errors.As(err, &id) {
		return &ErrInvalidDimension{Dimension: id.Dimension, cause: err}
	}

	return err
}
