package smooth

import (
	"fmt"
	"iter"
	"log/slog"
	"time"
)

// Run is the measurement of one doubling scale.
type Run struct {
	// Passes is the number of averaging passes run at this scale.
	Passes int

	// Elapsed is the wall time of the whole scale.
	Elapsed time.Duration

	// Ratio is Elapsed divided by the previous scale's Elapsed.
	// Only meaningful when HasRatio is true.
	Ratio float64

	// HasRatio is false for the first scale, and for any scale whose
	// predecessor measured zero time.
	HasRatio bool

	// Cumulative is the sum of Elapsed over this and all earlier scales.
	Cumulative time.Duration
}

// Harness times an engine over the doubling schedule 1, 2, 4, ... passes.
//
// The harness itself is a sequential driver. Any parallelism comes from
// the engine.
//
// A zero Harness drives Sequential with time.Now.
type Harness struct {
	engine Engine
	clock  func() time.Time
	log    *slog.Logger
}

// NewHarness creates a harness driving e. WithClock and WithLogger apply.
func NewHarness(e Engine, opts ...Option) *Harness {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Harness{
		engine: e,
		clock:  o.clock,
		log:    o.logger,
	}
}

// Schedule returns the pass counts visited for bound: powers of two
// starting at 1 and not exceeding bound. It is empty for bound < 1.
func Schedule(bound int) []int {
	var s []int
	for passes := 1; passes <= bound; passes *= 2 {
		s = append(s, passes)
		if passes > bound/2 {
			break
		}
	}
	return s
}

// Runs returns the lazy sequence of measurements for bound.
//
// Every scale starts from a fresh copy of original, and every iteration of
// the returned sequence starts over from the first scale, so the sequence
// can be ranged over more than once. original is never modified.
//
// Returns ErrInvalidBound if bound < 1.
func (h *Harness) Runs(original *Grid, bound int) (iter.Seq[Run], error) {
	if bound < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBound, bound)
	}
	schedule := Schedule(bound)

	return func(yield func(Run) bool) {
		var prev, total time.Duration
		for i, passes := range schedule {
			elapsed := h.measure(original, passes)
			total += elapsed

			run := Run{Passes: passes, Elapsed: elapsed, Cumulative: total}
			if i > 0 && prev > 0 {
				run.Ratio = float64(elapsed) / float64(prev)
				run.HasRatio = true
			}
			prev = elapsed

			h.logger().Debug("scale finished",
				slog.Int("passes", passes),
				slog.Duration("elapsed", elapsed),
				slog.Duration("cumulative", total))

			if !yield(run) {
				return
			}
		}
	}, nil
}

// Collect runs every scale for bound and returns the measurements.
func (h *Harness) Collect(original *Grid, bound int) ([]Run, error) {
	seq, err := h.Runs(original, bound)
	if err != nil {
		return nil, err
	}
	var runs []Run
	for run := range seq {
		runs = append(runs, run)
	}
	return runs, nil
}

// measure times passes consecutive passes starting from a copy of original.
func (h *Harness) measure(original *Grid, passes int) time.Duration {
	working := original.Clone()
	e, now := h.engine, h.clock
	if e == nil {
		e = Sequential{}
	}
	if now == nil {
		now = time.Now
	}

	start := now()
	for range passes {
		working = e.ApplyOnce(working)
	}
	return now().Sub(start)
}

func (h *Harness) logger() *slog.Logger {
	if h.log != nil {
		return h.log
	}
	return Logger()
}
