package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForEachVisitsEveryIndexExactlyOnce(t *testing.T) {
	n := 1000
	counts := make([]int32, n)
	ForEach(n, func(i int) {
		atomic.AddInt32(&counts[i], 1)
	})
	for i, c := range counts {
		if c != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, c)
		}
	}
}

func TestForCoversFullRangeWithContiguousChunks(t *testing.T) {
	n := 97
	var covered []bool = make([]bool, n)
	For(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			covered[i] = true
		}
	})
	for i, ok := range covered {
		if !ok {
			t.Fatalf("index %d not covered by any chunk", i)
		}
	}
}

func TestForHandlesZeroAndNegativeN(t *testing.T) {
	called := false
	For(0, func(lo, hi int) { called = true })
	For(-5, func(lo, hi int) { called = true })
	if called {
		t.Fatal("For should not invoke fn for n <= 0")
	}
}

func TestForRespectsNumWorkersOverride(t *testing.T) {
	prev := NumWorkers
	defer func() { NumWorkers = prev }()

	NumWorkers = 4
	var chunks int32
	For(40, func(lo, hi int) {
		atomic.AddInt32(&chunks, 1)
	})
	if chunks != 4 {
		t.Fatalf("got %d chunks, want 4 with NumWorkers=4", chunks)
	}
}
