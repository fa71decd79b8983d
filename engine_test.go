package smooth

import (
	"math/rand/v2"
	"sync/atomic"
	"testing"

	"github.com/gogpu/smooth/internal/parallel"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSequentialFixedPoint(t *testing.T) {
	for _, p := range []Pixel{{}, Gray(255), {12, 200, 7}} {
		g := mustGrid(t, 7, 5)
		g.Fill(p)

		out := Sequential{}.ApplyOnce(g)
		if !out.Equal(g) {
			t.Errorf("uniform %v grid changed after one pass", p)
		}
	}
}

func TestApplyOnceFreshGrid(t *testing.T) {
	g := randomGrid(t, 6, 6, 1)
	orig := g.Clone()

	for _, e := range []Engine{Sequential{}, NewParallel()} {
		out := e.ApplyOnce(g)
		if &out.Data()[0] == &g.Data()[0] {
			t.Errorf("%T.ApplyOnce returned a grid aliasing its input", e)
		}
		if !g.Equal(orig) {
			t.Fatalf("%T.ApplyOnce modified its input", e)
		}
		if !out.SameSize(g) {
			t.Errorf("%T.ApplyOnce changed dimensions", e)
		}
	}
}

func TestParallelDefaults(t *testing.T) {
	if got := NewParallel().Workers(); got != DefaultWorkers {
		t.Errorf("Workers() = %d, want %d", got, DefaultWorkers)
	}
	if got := NewParallel(WithWorkers(0)).Workers(); got != DefaultWorkers {
		t.Errorf("WithWorkers(0).Workers() = %d, want %d", got, DefaultWorkers)
	}
	if got := NewParallel(WithWorkers(3)).Workers(); got != 3 {
		t.Errorf("WithWorkers(3).Workers() = %d, want 3", got)
	}
	if got := NewParallel(WithWorkers(1 << 62)).Workers(); got != MaxWorkers {
		t.Errorf("WithWorkers(1<<62).Workers() = %d, want %d", got, MaxWorkers)
	}
}

func TestParallelZeroValue(t *testing.T) {
	g := mustGrid(t, 4, 4)
	g.Set(0, 0, Gray(255))

	var p Parallel
	if got := p.Workers(); got != DefaultWorkers {
		t.Errorf("zero Parallel Workers() = %d, want %d", got, DefaultWorkers)
	}
	got := p.ApplyOnce(g)
	if want := (Sequential{}).ApplyOnce(g); !got.Equal(want) {
		t.Error("zero Parallel differs from Sequential")
	}
}

func TestParallelHugeWorkerCount(t *testing.T) {
	g := randomGrid(t, 7, 5, 3)
	got := NewParallel(WithWorkers(1 << 62)).ApplyOnce(g)
	if want := (Sequential{}).ApplyOnce(g); !got.Equal(want) {
		t.Error("clamped Parallel differs from Sequential")
	}
}

// 4x4 grid, single lit corner, more workers than rows.
func TestParallelMoreWorkersThanRows(t *testing.T) {
	g := mustGrid(t, 4, 4)
	g.Set(0, 0, Gray(255))

	counter := &countingExecutor{}
	out := NewParallel(WithWorkers(10), WithExecutor(counter)).ApplyOnce(g)

	if got := out.At(0, 0); got != Gray(63) {
		t.Errorf("At(0, 0) = %v, want %v", got, Gray(63))
	}
	if counter.tasks.Load() != 10 {
		t.Errorf("executor ran %d tasks, want 10 (empty ranges still join)", counter.tasks.Load())
	}
	if !out.Equal((Sequential{}).ApplyOnce(g)) {
		t.Error("parallel output differs from sequential")
	}
}

func TestAllZeroFixedPoint(t *testing.T) {
	g := mustGrid(t, 4, 4)
	out := NewParallel().ApplyOnce(g)
	if !out.Equal(g) {
		t.Error("all-zero 4x4 grid changed after one pass")
	}
}

func TestEngineEquivalence(t *testing.T) {
	pool := parallel.NewWorkerPool(4)
	defer pool.Close()

	engines := map[string]Engine{
		"scoped-10": NewParallel(),
		"scoped-1":  NewParallel(WithWorkers(1)),
		"scoped-3":  NewParallel(WithWorkers(3)),
		"scoped-64": NewParallel(WithWorkers(64)),
		"pool-7":    NewParallel(WithWorkers(7), WithExecutor(pool)),
	}

	sizes := []struct{ rows, cols int }{
		{1, 1}, {1, 9}, {9, 1}, {2, 2}, {3, 3}, {4, 4}, {11, 13}, {32, 17},
	}

	for name, e := range engines {
		for _, sz := range sizes {
			original := randomGrid(t, sz.rows, sz.cols, uint64(sz.rows*100+sz.cols))
			for _, k := range []int{0, 1, 2, 5} {
				want, err := Apply(Sequential{}, original, k, nil)
				if err != nil {
					t.Fatal(err)
				}
				got, err := Apply(e, original, k, nil)
				if err != nil {
					t.Fatal(err)
				}
				if !got.Equal(want) {
					t.Errorf("%s: %dx%d after %d passes differs from sequential", name, sz.rows, sz.cols, k)
				}
			}
		}
	}
}

type countingExecutor struct {
	tasks atomic.Int64
}

func (c *countingExecutor) ExecuteAll(work []func()) {
	c.tasks.Add(int64(len(work)))
	parallel.Scoped{}.ExecuteAll(work)
}

func randomGrid(t testing.TB, rows, cols int, seed uint64) *Grid {
	t.Helper()
	g := mustGrid(t, rows, cols)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := range g.Data() {
		g.Data()[i] = uint8(rng.IntN(256))
	}
	return g
}
