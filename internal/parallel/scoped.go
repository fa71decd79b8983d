package parallel

import "golang.org/x/sync/errgroup"

// Scoped runs each batch on freshly spawned goroutines, one per task, and
// joins them before returning. Nothing outlives an ExecuteAll call.
//
// The zero value is ready to use.
type Scoped struct{}

// ExecuteAll runs every task on its own goroutine and waits for all of
// them.
func (Scoped) ExecuteAll(work []func()) {
	var g errgroup.Group
	for _, fn := range work {
		g.Go(func() error {
			fn()
			return nil
		})
	}
	_ = g.Wait() // tasks never fail
}
