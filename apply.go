package smooth

import "fmt"

// PassFunc is called after each completed pass with the 1-based pass index
// and the grid that pass produced.
type PassFunc func(pass int, g *Grid) error

// Apply runs passes averaging passes of e starting from g and returns the
// final grid. Each pass reads the previous pass's output, so no grid is
// modified while it is being read.
//
// Zero passes return g itself. A negative count returns ErrInvalidBound.
// If onPass is non-nil it runs after every pass; its first error stops
// the run and is returned together with the grid reached so far.
func Apply(e Engine, g *Grid, passes int, onPass PassFunc) (*Grid, error) {
	if passes < 0 {
		return nil, fmt.Errorf("%w: got %d passes", ErrInvalidBound, passes)
	}
	for pass := 1; pass <= passes; pass++ {
		g = e.ApplyOnce(g)
		if onPass == nil {
			continue
		}
		if err := onPass(pass, g); err != nil {
			return g, fmt.Errorf("smooth: after pass %d: %w", pass, err)
		}
	}
	return g, nil
}

// Compare reports whether a and b are pixel-for-pixel identical.
// Returns ErrDimensionMismatch if their dimensions differ.
func Compare(a, b *Grid) (bool, error) {
	if !a.SameSize(b) {
		return false, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrDimensionMismatch, a.rows, a.cols, b.rows, b.cols)
	}
	return a.Equal(b), nil
}
