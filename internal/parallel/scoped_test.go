package parallel

import (
	"sync/atomic"
	"testing"
)

func TestScoped_ExecuteAll(t *testing.T) {
	var counter atomic.Int64
	work := make([]func(), 10)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	Scoped{}.ExecuteAll(work)

	if counter.Load() != 10 {
		t.Errorf("counter = %d, want 10", counter.Load())
	}
}

func TestScoped_ExecuteAll_Empty(t *testing.T) {
	Scoped{}.ExecuteAll(nil)
	Scoped{}.ExecuteAll([]func(){})
}

func TestScoped_ExecuteAll_NoOpTasksJoin(t *testing.T) {
	// Tasks with nothing to do still take part in the join.
	var ran atomic.Int64
	work := []func(){
		func() { ran.Add(1) },
		func() {},
		func() {},
		func() { ran.Add(1) },
	}

	Scoped{}.ExecuteAll(work)

	if ran.Load() != 2 {
		t.Errorf("ran = %d, want 2", ran.Load())
	}
}

func BenchmarkScoped_ExecuteAll(b *testing.B) {
	work := make([]func(), 10)
	for i := range work {
		work[i] = func() {}
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Scoped{}.ExecuteAll(work)
	}
}
