package simulation

import (
	"testing"

	"fluids/core"
	"fluids/spatial"
)

func newBoundary(positions []core.Vec) *core.BoundaryState {
	b := core.NewBoundaryState(len(positions), 2)
	copy(b.Position, positions)
	return b
}

func TestComputeBoundaryPsiAssignsPositiveValues(t *testing.T) {
	h := 0.5
	kernel := spatial.NewCubicSpline(h, 2)
	positions := []core.Vec{{0, 0}, {0.1, 0}, {0.2, 0}, {0, 0.1}}
	boundary := newBoundary(positions)

	grid := spatial.NewGrid(h, 2, []int{10, 10})
	grid.RebuildBoundary(boundary.Position)

	if err := computeBoundaryPsi(boundary, grid, kernel, 1000); err != nil {
		t.Fatalf("computeBoundaryPsi returned error for well-sampled boundary: %v", err)
	}
	for i, psi := range boundary.Psi {
		if psi <= 0 {
			t.Fatalf("Psi[%d] = %v, want > 0", i, psi)
		}
	}
}

func TestComputeBoundaryPsiDetectsDegenerateSampling(t *testing.T) {
	h := 0.5
	kernel := spatial.NewCubicSpline(h, 2)
	positions := []core.Vec{{0, 0}, {50, 50}}
	boundary := newBoundary(positions)

	grid := spatial.NewGrid(h, 2, []int{200, 200})
	grid.RebuildBoundary(boundary.Position)

	err := computeBoundaryPsi(boundary, grid, kernel, 1000)
	if err == nil {
		t.Fatal("expected a degenerate boundary error for an isolated particle")
	}
	degErr, ok := err.(*DegenerateBoundaryError)
	if !ok {
		t.Fatalf("expected *DegenerateBoundaryError, got %T", err)
	}
	if degErr.Index != 0 && degErr.Index != 1 {
		t.Fatalf("unexpected degenerate index %d", degErr.Index)
	}
}
