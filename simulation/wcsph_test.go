package simulation

import (
	"testing"

	"fluids/spatial"
)

func TestNewWCSPHSolverRejectsNonPositiveStiffness(t *testing.T) {
	params, fluid, boundary, grid, domain := newTestScene(t)
	_, err := NewWCSPHSolver(params, 0, 7, fluid, boundary, grid, domain, spatial.ClampAndZeroPenetration)
	if err == nil {
		t.Fatal("expected a ConfigError for non-positive stiffness")
	}
}

func TestWCSPHEquationOfStateClampsNegativePressure(t *testing.T) {
	params, _, _, _, _ := newTestScene(t)
	solver := &WCSPHSolver{Params: params, Stiffness: 3000, Gamma: 7}

	p := solver.equationOfState(params.Rho0 * 0.5)
	if p != 0 {
		t.Fatalf("equationOfState below rest density: got %v, want 0 (clamped)", p)
	}
}

func TestWCSPHEquationOfStatePositiveAboveRestDensity(t *testing.T) {
	params, _, _, _, _ := newTestScene(t)
	solver := &WCSPHSolver{Params: params, Stiffness: 3000, Gamma: 7}

	p := solver.equationOfState(params.Rho0 * 1.1)
	if p <= 0 {
		t.Fatalf("equationOfState above rest density: got %v, want > 0", p)
	}
}

func TestWCSPHSolverStepKeepsDensityNonNegative(t *testing.T) {
	params, fluid, boundary, grid, domain := newTestScene(t)
	solver, err := NewWCSPHSolver(params, 3000, 7, fluid, boundary, grid, domain, spatial.ClampAndZeroPenetration)
	if err != nil {
		t.Fatalf("NewWCSPHSolver: %v", err)
	}

	for step := 0; step < 5; step++ {
		solver.Step()
	}
	for i := 0; i < fluid.N; i++ {
		if fluid.Density[i] < 0 {
			t.Fatalf("particle %d density went negative: %v", i, fluid.Density[i])
		}
	}
}
