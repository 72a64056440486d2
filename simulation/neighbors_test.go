package simulation

import (
	"testing"

	"fluids/core"
	"fluids/spatial"
)

func TestFindFluidNeighborsIncludesSelfByIndex(t *testing.T) {
	h := 0.5
	grid := spatial.NewGrid(h, 2, []int{10, 10})
	fluidPos := []core.Vec{{1, 1}, {1.1, 1}}
	boundaryPos := []core.Vec{{1, 1.2}}

	grid.RebuildFluid(fluidPos)
	grid.RebuildBoundary(boundaryPos)

	fluidNeighbors, boundaryNeighbors := findFluidNeighbors(grid, fluidPos, boundaryPos, 2*h)

	self := false
	for _, j := range fluidNeighbors.of(0) {
		if j == 0 {
			self = true
		}
	}
	if !self {
		t.Fatal("expected particle 0's neighbor list to include its own index")
	}
	if len(boundaryNeighbors.of(0)) == 0 {
		t.Fatal("expected particle 0 to have a nearby boundary neighbor")
	}
}

func TestBuildNeighborTableFlattensConsistently(t *testing.T) {
	lists := [][]int{{1, 2}, {}, {0}}
	table := flatten(lists)

	if got := table.of(0); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("of(0): got %v, want [1 2]", got)
	}
	if got := table.of(1); len(got) != 0 {
		t.Fatalf("of(1): got %v, want empty", got)
	}
	if got := table.of(2); len(got) != 1 || got[0] != 0 {
		t.Fatalf("of(2): got %v, want [0]", got)
	}
}
