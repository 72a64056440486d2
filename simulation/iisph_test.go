package simulation

import (
	"testing"

	"fluids/core"
	"fluids/spatial"
)

func newTestScene(t *testing.T) (core.Params, *core.FluidState, *core.BoundaryState, *spatial.Grid, spatial.Domain) {
	t.Helper()
	params := core.Params{
		Dim: 2, H: 0.1, Rho0: 1000, Nu: 0.08, Eta: 0.01, Dt: 0.001, Omega: 0.5,
		Gravity: core.Vec{0, -9.8},
	}

	var fluidPos []core.Vec
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			fluidPos = append(fluidPos, core.Vec{float64(i)*0.08 + 0.3, float64(j)*0.08 + 0.3})
		}
	}
	fluid := core.NewFluidState(len(fluidPos), 2)
	copy(fluid.Position, fluidPos)

	var boundaryPos []core.Vec
	for i := 0; i < 20; i++ {
		boundaryPos = append(boundaryPos,
			core.Vec{float64(i) * 0.05, 0},
			core.Vec{float64(i) * 0.05, 0.95},
			core.Vec{0, float64(i) * 0.05},
			core.Vec{0.95, float64(i) * 0.05},
		)
	}
	boundary := core.NewBoundaryState(len(boundaryPos), 2)
	copy(boundary.Position, boundaryPos)

	grid := spatial.NewGrid(params.H, 2, []int{10, 10})
	domain := spatial.Domain{Min: core.Vec{0, 0}, Max: core.Vec{1, 1}}
	return params, fluid, boundary, grid, domain
}

func TestNewIISPHSolverRejectsFluidOutsideGrid(t *testing.T) {
	params, fluid, boundary, grid, domain := newTestScene(t)
	fluid.Position[0] = core.Vec{5, 5} // outside the grid's [0,1)x[0,1) resolution

	_, err := NewIISPHSolver(params, fluid, boundary, grid, domain, spatial.ClampAndZeroPenetration)
	if err == nil {
		t.Fatal("expected a ConfigError for a fluid particle outside the grid's resolution")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
}

func TestNewIISPHSolverRejectsEmptyFluid(t *testing.T) {
	params, _, boundary, grid, domain := newTestScene(t)
	empty := core.NewFluidState(0, 2)
	_, err := NewIISPHSolver(params, empty, boundary, grid, domain, spatial.ClampAndZeroPenetration)
	if err == nil {
		t.Fatal("expected a ConfigError for an empty fluid block")
	}
}

func TestIISPHSolverStepKeepsDensityAndPressureNonNegative(t *testing.T) {
	params, fluid, boundary, grid, domain := newTestScene(t)
	solver, err := NewIISPHSolver(params, fluid, boundary, grid, domain, spatial.ClampAndZeroPenetration)
	if err != nil {
		t.Fatalf("NewIISPHSolver: %v", err)
	}

	for step := 0; step < 5; step++ {
		solver.Step()
	}

	for i := 0; i < fluid.N; i++ {
		if fluid.Density[i] < 0 {
			t.Fatalf("particle %d density went negative: %v", i, fluid.Density[i])
		}
		if fluid.Pressure[i] < 0 {
			t.Fatalf("particle %d pressure went negative: %v", i, fluid.Pressure[i])
		}
	}
	if solver.LastIterations == 0 {
		t.Fatal("expected at least one pressure solve iteration to have run")
	}
}

func TestIISPHSolverClampKeepsParticlesInDomain(t *testing.T) {
	params, fluid, boundary, grid, domain := newTestScene(t)
	solver, err := NewIISPHSolver(params, fluid, boundary, grid, domain, spatial.ClampAndZeroPenetration)
	if err != nil {
		t.Fatalf("NewIISPHSolver: %v", err)
	}

	for step := 0; step < 20; step++ {
		solver.Step()
	}

	for i := 0; i < fluid.N; i++ {
		if !domain.Contains(fluid.Position[i]) {
			t.Fatalf("particle %d escaped the domain under clamp policy: %v", i, fluid.Position[i])
		}
	}
}
