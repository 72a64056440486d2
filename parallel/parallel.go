// Package parallel implements the data-parallel phase scheduler every
// per-particle phase runs under: a parallel-for across particle index,
// with a join (barrier) at the phase boundary and no locks or atomics
// required within a phase, since each task owns a disjoint slice of
// output. The chunked-goroutine-plus-WaitGroup shape is grounded on the
// phase-parallel entity update loop used elsewhere in the retrieved
// corpus's simulation tooling.
package parallel

import (
	"runtime"
	"sync"
)

// NumWorkers, when > 0, overrides runtime.GOMAXPROCS(0) as the chunk count
// used by For. Tests set it to get deterministic worker counts.
var NumWorkers = 0

// For partitions [0,n) into contiguous chunks, one per worker, and calls fn
// once per chunk with its [lo, hi) bounds. It returns only after every
// chunk has completed, forming the barrier required between phases.
func For(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	workers := NumWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if lo >= n {
			break
		}
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// ForEach is a convenience wrapper around For that calls fn once per index
// rather than once per chunk, for phases that are not chunk-sensitive.
func ForEach(n int, fn func(i int)) {
	For(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			fn(i)
		}
	})
}
