package smooth

import (
	"log/slog"
	"time"

	"github.com/gogpu/smooth/internal/parallel"
)

// Option configures a Parallel engine or a Harness during creation.
//
// Example:
//
//	// Ten workers, fresh goroutines per pass
//	e := smooth.NewParallel()
//
//	// Persistent pool reused across passes
//	pool := parallel.NewWorkerPool(8)
//	defer pool.Close()
//	e := smooth.NewParallel(smooth.WithWorkers(8), smooth.WithExecutor(pool))
type Option func(*options)

// options holds optional configuration shared by the engine and harness
// constructors. Each constructor reads the fields it needs.
type options struct {
	workers  int
	executor Executor
	clock    func() time.Time
	logger   *slog.Logger
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		workers:  DefaultWorkers,
		executor: parallel.Scoped{},
		clock:    time.Now,
		logger:   nil, // package logger, resolved at call time
	}
}

// WithWorkers sets the number of row ranges a parallel pass is split into.
// n <= 0 selects DefaultWorkers; n > MaxWorkers is clamped to MaxWorkers.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultWorkers
		}
		n = min(n, MaxWorkers)
		o.workers = n
	}
}

// WithExecutor sets the executor that runs the per-range tasks of a
// parallel pass. A nil executor keeps the default.
func WithExecutor(e Executor) Option {
	return func(o *options) {
		if e != nil {
			o.executor = e
		}
	}
}

// WithClock sets the time source used by the harness to measure scales.
// A nil clock keeps time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

// WithLogger sets a logger for one engine or harness instead of the
// package logger installed with SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
