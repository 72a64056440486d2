package simulation

import (
	"math"

	"fluids/core"
	"fluids/parallel"
	"fluids/spatial"
)

// WCSPHSolver implements the Weakly Compressible SPH alternative named in
// the glossary: an explicit equation-of-state pressure model in place of
// IISPH's implicit Jacobi solve, sharing the same kernel, grid, and
// containment machinery.
type WCSPHSolver struct {
	Params core.Params
	Kernel spatial.CubicSpline
	Grid   *spatial.Grid
	Domain spatial.Domain
	Policy spatial.ContainmentPolicy
	Colors core.ColorScheme

	// Stiffness (k) and Gamma are the equation-of-state constants:
	// p = Stiffness * ((rho/rho0)^Gamma - 1).
	Stiffness float64
	Gamma     float64

	Fluid    *core.FluidState
	Boundary *core.BoundaryState

	OnDivergence DivergenceHandler
	OnWarning    func(string)
	LastDiverged bool

	fluidNeighbors    neighborTable
	boundaryNeighbors neighborTable
}

// NewWCSPHSolver validates params and the scene, precomputes boundary Ψ,
// and returns a ready-to-step solver.
func NewWCSPHSolver(params core.Params, stiffness, gamma float64, fluid *core.FluidState, boundary *core.BoundaryState, grid *spatial.Grid, domain spatial.Domain, policy spatial.ContainmentPolicy) (*WCSPHSolver, error) {
	if err := validateParams(params, fluid, grid); err != nil {
		return nil, err
	}
	if stiffness <= 0 {
		return nil, &ConfigError{Reason: "wcsph stiffness must be > 0"}
	}

	kernel := spatial.NewCubicSpline(params.H, params.Dim)

	grid.RebuildBoundary(boundary.Position)
	if err := computeBoundaryPsi(boundary, grid, kernel, params.Rho0); err != nil {
		return nil, err
	}

	return &WCSPHSolver{
		Params:    params,
		Kernel:    kernel,
		Grid:      grid,
		Domain:    domain,
		Policy:    policy,
		Colors:    core.DefaultColorScheme(),
		Stiffness: stiffness,
		Gamma:     gamma,
		Fluid:     fluid,
		Boundary:  boundary,
	}, nil
}

// Step advances the simulation by one time step: rebuild the neighbor
// grid, then compute density, pressure, forces, and integrate.
func (s *WCSPHSolver) Step() {
	s.LastDiverged = false

	s.Grid.RebuildFluid(s.Fluid.Position)
	s.fluidNeighbors, s.boundaryNeighbors = findFluidNeighbors(s.Grid, s.Fluid.Position, s.Boundary.Position, s.Kernel.SupportRadius())

	f := s.Fluid
	parallel.ForEach(f.N, func(i int) {
		f.Density[i] = s.computeDensity(i)
	})
	parallel.ForEach(f.N, func(i int) {
		f.Pressure[i] = s.equationOfState(f.Density[i])
	})
	parallel.ForEach(f.N, func(i int) {
		f.Fp[i] = s.bodyForce(i).Add(s.pressureForce(i)).Add(s.viscousForce(i))
	})
	parallel.ForEach(f.N, func(i int) {
		f.Velocity[i] = f.Velocity[i].Add(f.Fp[i].Scale(s.Params.Dt / s.Params.M0()))
		newPos := f.Position[i].Add(f.Velocity[i].Scale(s.Params.Dt))
		s.applyContainment(i, newPos)
	})
}

// computeDensity mirrors IISPHSolver.computeDensity; WCSPH and IISPH share
// the same SPH density summation.
func (s *WCSPHSolver) computeDensity(i int) float64 {
	f, b := s.Fluid, s.Boundary
	m0 := s.Params.M0()
	density := 0.0
	for _, j := range s.fluidNeighbors.of(i) {
		r := f.Position[i].Sub(f.Position[j])
		density += m0 * s.Kernel.W(r)
	}
	for _, j := range s.boundaryNeighbors.of(i) {
		r := f.Position[i].Sub(b.Position[j])
		density += b.Psi[j] * s.Kernel.W(r)
	}
	return density
}

// equationOfState implements the Tait-style pressure model:
// p = k*((rho/rho0)^gamma - 1), clamped to non-negative.
func (s *WCSPHSolver) equationOfState(density float64) float64 {
	p := s.Stiffness * (math.Pow(density/s.Params.Rho0, s.Gamma) - 1)
	return math.Max(p, 0)
}

func (s *WCSPHSolver) bodyForce(i int) core.Vec {
	return s.Params.Gravity.Scale(s.Params.M0())
}

func (s *WCSPHSolver) pressureForce(i int) core.Vec {
	f, b := s.Fluid, s.Boundary
	m0 := s.Params.M0()
	force := core.NewVec(s.Params.Dim)
	rhoISq := f.Density[i] * f.Density[i]

	for _, j := range s.fluidNeighbors.of(i) {
		if j == i {
			continue
		}
		r := f.Position[i].Sub(f.Position[j])
		rhoJSq := f.Density[j] * f.Density[j]
		coeff := -m0 * m0 * (f.Pressure[i]/rhoISq + f.Pressure[j]/rhoJSq)
		force = force.Add(s.Kernel.GradW(r).Scale(coeff))
	}
	for _, j := range s.boundaryNeighbors.of(i) {
		r := f.Position[i].Sub(b.Position[j])
		coeff := -m0 * b.Psi[j] * (f.Pressure[i] / rhoISq)
		force = force.Add(s.Kernel.GradW(r).Scale(coeff))
	}
	return force
}

func (s *WCSPHSolver) viscousForce(i int) core.Vec {
	f := s.Fluid
	m0 := s.Params.M0()
	force := core.NewVec(s.Params.Dim)

	for _, j := range s.fluidNeighbors.of(i) {
		if j == i {
			continue
		}
		r := f.Position[i].Sub(f.Position[j])
		v := f.Velocity[i].Sub(f.Velocity[j])
		denom := r.LengthSquare() + 0.01*s.Params.H*s.Params.H
		coeff := 2 * s.Params.Nu * (m0 * m0 / f.Density[j]) * v.Dot(r) / denom
		force = force.Add(s.Kernel.GradW(r).Scale(coeff))
	}
	return force
}

func (s *WCSPHSolver) applyContainment(i int, newPos core.Vec) {
	f := s.Fluid
	switch s.Policy {
	case spatial.ClampAndZeroPenetration:
		clamped, vel, moved := spatial.Clamp(newPos, f.Position[i], s.Domain, s.Params.Dt)
		f.Position[i] = clamped
		if moved {
			f.Velocity[i] = vel
		}
	case spatial.BoundaryParticleReflection:
		if s.Domain.Contains(newPos) {
			f.Position[i] = newPos
			return
		}
		s.LastDiverged = true
		if s.OnDivergence != nil {
			s.OnDivergence(DivergenceReport{
				Index:    i,
				Position: []float64(f.Position[i]),
				Velocity: []float64(f.Velocity[i]),
				Density:  f.Density[i],
				Pressure: f.Pressure[i],
			})
		}
	}
}
