package smooth

import (
	"log/slog"

	"github.com/gogpu/smooth/internal/parallel"
)

// DefaultWorkers is the worker count used by Parallel when none is given.
const DefaultWorkers = 10

// MaxWorkers bounds the worker count of a Parallel engine. Larger values
// are clamped.
const MaxWorkers = 1 << 16

// Engine performs one averaging pass.
//
// ApplyOnce reads in and returns a freshly allocated grid of the same
// dimensions. in is never modified.
type Engine interface {
	ApplyOnce(in *Grid) *Grid
}

// Executor runs a batch of independent tasks and returns only after every
// task has finished. The return is the join barrier that makes the
// tasks' writes visible to the caller.
//
// parallel.Scoped and *parallel.WorkerPool implement Executor.
type Executor interface {
	ExecuteAll(work []func())
}

// Sequential applies the kernel to every pixel on the calling goroutine
// in row-major order.
type Sequential struct{}

// ApplyOnce implements Engine.
func (Sequential) ApplyOnce(in *Grid) *Grid {
	out := newGrid(in.rows, in.cols)
	averageRows(in, out, RowRange{Start: 0, End: in.rows})
	return out
}

// Parallel applies the kernel with a fixed number of workers, each owning
// a contiguous block of output rows computed by Partition.
//
// Workers only read the input grid and only write their own rows of the
// output grid, so the compute phase needs no locking. The only
// synchronization is the Executor's join barrier.
//
// The zero value is usable: DefaultWorkers workers on a parallel.Scoped
// executor with the package logger.
type Parallel struct {
	workers int
	exec    Executor
	log     *slog.Logger
}

// NewParallel creates a parallel engine.
//
// Defaults: DefaultWorkers workers, a parallel.Scoped executor that spawns
// fresh goroutines for each pass, and the package logger.
func NewParallel(opts ...Option) *Parallel {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Parallel{
		workers: o.workers,
		exec:    o.executor,
		log:     o.logger,
	}
}

// Workers returns the number of row ranges each pass is split into.
func (p *Parallel) Workers() int {
	switch {
	case p.workers <= 0:
		return DefaultWorkers
	case p.workers > MaxWorkers:
		return MaxWorkers
	}
	return p.workers
}

// ApplyOnce implements Engine.
func (p *Parallel) ApplyOnce(in *Grid) *Grid {
	out := newGrid(in.rows, in.cols)
	ranges := Partition(in.rows, p.Workers())

	work := make([]func(), len(ranges))
	for i, rr := range ranges {
		work[i] = func() {
			averageRows(in, out, rr)
		}
	}

	p.logger().Debug("parallel pass",
		slog.Int("rows", in.rows),
		slog.Int("cols", in.cols),
		slog.Int("workers", len(ranges)))

	p.executor().ExecuteAll(work)
	return out
}

func (p *Parallel) executor() Executor {
	if p.exec != nil {
		return p.exec
	}
	return parallel.Scoped{}
}

func (p *Parallel) logger() *slog.Logger {
	if p.log != nil {
		return p.log
	}
	return Logger()
}

// averageRows writes the averaged pixels of rows [rr.Start, rr.End) into
// out. An empty range does nothing.
func averageRows(in, out *Grid, rr RowRange) {
	for r := rr.Start; r < rr.End; r++ {
		dst := out.Row(r)
		for c := range in.cols {
			px := Average(in, r, c)
			copy(dst[c*Channels:(c+1)*Channels], px[:])
		}
	}
}
