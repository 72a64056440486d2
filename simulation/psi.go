package simulation

import (
	"fluids/core"
	"fluids/parallel"
	"fluids/spatial"
)

// computeBoundaryPsi computes, for each boundary particle j,
// Psi_j := rho0 / sum_{k in boundary neighbors of j within h} W(x_j - x_k).
// It is computed exactly once per boundary topology, at solver
// construction. A boundary particle whose neighbor sum is zero is a
// degenerate sampling, reported as an error.
func computeBoundaryPsi(boundary *core.BoundaryState, grid *spatial.Grid, kernel spatial.CubicSpline, rho0 float64) error {
	n := boundary.N
	boundaryBoundaryNeighbors := buildNeighborTable(n, func(j int) []int {
		_, bl := grid.Neighbors(boundary.Position[j], kernel.H, nil, boundary.Position)
		return bl
	})

	sums := make([]float64, n)
	parallel.ForEach(n, func(j int) {
		sum := 0.0
		for _, k := range boundaryBoundaryNeighbors.of(j) {
			if k == j {
				continue
			}
			r := boundary.Position[j].Sub(boundary.Position[k])
			sum += kernel.W(r)
		}
		sums[j] = sum
	})

	for j, sum := range sums {
		if sum == 0 {
			return &DegenerateBoundaryError{Index: j}
		}
		boundary.Psi[j] = rho0 / sum
	}
	return nil
}
