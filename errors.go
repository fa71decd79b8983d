package smooth

import "errors"

// Validation errors. All of them are detected before any averaging work
// starts.
var (
	// ErrUsage is returned for a wrong argument count or type.
	ErrUsage = errors.New("smooth: usage")

	// ErrInvalidBound is returned when a pass-count bound is not positive.
	ErrInvalidBound = errors.New("smooth: pass-count bound must be > 0")

	// ErrDimensionMismatch is returned when two grids expected to align
	// differ in rows or cols.
	ErrDimensionMismatch = errors.New("smooth: grid dimensions differ")

	// ErrInvalidDimensions is returned when a grid is constructed with a
	// negative dimension.
	ErrInvalidDimensions = errors.New("smooth: invalid dimensions")
)
