package simulation

import (
	"fluids/core"
	"fluids/parallel"
	"fluids/spatial"
)

// neighborTable is a compressed-sparse-row neighbor list: one offsets
// array (length n+1) and one flat indices array, rebuilt every step
// instead of a slice-of-slices.
type neighborTable struct {
	offsets []int
	indices []int
}

func (t neighborTable) of(i int) []int {
	return t.indices[t.offsets[i]:t.offsets[i+1]]
}

// buildNeighborTable computes compute(i) for every i in [0,n) in parallel
// and flattens the per-particle results into a CSR table with a second
// parallel pass.
func buildNeighborTable(n int, compute func(i int) []int) neighborTable {
	lists := make([][]int, n)
	parallel.ForEach(n, func(i int) {
		lists[i] = compute(i)
	})
	return flatten(lists)
}

// findFluidNeighbors recomputes, for every fluid particle, its fluid and
// boundary neighbors within 2h. The grid must already have been rebuilt
// for the current positions.
func findFluidNeighbors(grid *spatial.Grid, fluidPos, boundaryPos []core.Vec, supportRadius float64) (fluidNeighbors, boundaryNeighbors neighborTable) {
	n := len(fluidPos)
	fluidLists := make([][]int, n)
	boundaryLists := make([][]int, n)

	parallel.ForEach(n, func(i int) {
		fl, bl := grid.Neighbors(fluidPos[i], supportRadius, fluidPos, boundaryPos)
		fluidLists[i] = fl
		boundaryLists[i] = bl
	})

	fluidNeighbors = flatten(fluidLists)
	boundaryNeighbors = flatten(boundaryLists)
	return fluidNeighbors, boundaryNeighbors
}

// flatten packs a per-particle slice-of-lists into a single CSR table.
func flatten(lists [][]int) neighborTable {
	n := len(lists)
	offsets := make([]int, n+1)
	for i := 0; i < n; i++ {
		offsets[i+1] = offsets[i] + len(lists[i])
	}
	indices := make([]int, offsets[n])
	parallel.ForEach(n, func(i int) {
		copy(indices[offsets[i]:offsets[i+1]], lists[i])
	})
	return neighborTable{offsets: offsets, indices: indices}
}
