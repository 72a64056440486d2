// Package simulation implements the IISPH pressure solver and its WCSPH
// alternative, sharing the same kernel, uniform grid, and parallel-for
// phase scheduler.
package simulation

import (
	"fmt"
	"math"

	"fluids/core"
	"fluids/parallel"
	"fluids/spatial"
)

// MaxPressureIterations bounds the relaxed-Jacobi pressure loop; exceeding
// it is a non-convergence warning, not a panic.
const MaxPressureIterations = 100

// IISPHSolver implements the Implicit Incompressible SPH pressure solver.
type IISPHSolver struct {
	Params core.Params
	Kernel spatial.CubicSpline
	Grid   *spatial.Grid
	Domain spatial.Domain
	Policy spatial.ContainmentPolicy
	Colors core.ColorScheme

	Fluid    *core.FluidState
	Boundary *core.BoundaryState

	OnDivergence DivergenceHandler
	OnWarning    func(string)

	fluidNeighbors    neighborTable
	boundaryNeighbors neighborTable

	// LastIterations and LastAvgDensity report the outcome of the most
	// recent pressure solve, for telemetry.
	LastIterations int
	LastAvgDensity float64
	LastDiverged   bool
}

// NewIISPHSolver validates params and the scene, precomputes boundary Ψ,
// and returns a ready-to-step solver. No partial solver is returned on
// error.
func NewIISPHSolver(params core.Params, fluid *core.FluidState, boundary *core.BoundaryState, grid *spatial.Grid, domain spatial.Domain, policy spatial.ContainmentPolicy) (*IISPHSolver, error) {
	if err := validateParams(params, fluid, grid); err != nil {
		return nil, err
	}

	kernel := spatial.NewCubicSpline(params.H, params.Dim)

	grid.RebuildBoundary(boundary.Position)
	if err := computeBoundaryPsi(boundary, grid, kernel, params.Rho0); err != nil {
		return nil, err
	}

	return &IISPHSolver{
		Params:   params,
		Kernel:   kernel,
		Grid:     grid,
		Domain:   domain,
		Policy:   policy,
		Colors:   core.DefaultColorScheme(),
		Fluid:    fluid,
		Boundary: boundary,
	}, nil
}

func validateParams(p core.Params, fluid *core.FluidState, grid *spatial.Grid) error {
	if p.H <= 0 {
		return &ConfigError{Reason: "h must be > 0"}
	}
	if p.Eta <= 0 {
		return &ConfigError{Reason: "eta must be > 0"}
	}
	if fluid == nil || fluid.N == 0 {
		return &ConfigError{Reason: "fluid block is empty"}
	}
	for i, pos := range fluid.Position {
		if !grid.InBounds(pos) {
			return &ConfigError{Reason: fmt.Sprintf("fluid particle %d at %v lies outside the grid's resolution", i, []float64(pos))}
		}
	}
	return nil
}

// Step advances the simulation by one time step: rebuild grid -> find
// neighbors -> predict advection -> pressure solve -> integrate ->
// containment.
func (s *IISPHSolver) Step() {
	s.LastDiverged = false

	s.Grid.RebuildFluid(s.Fluid.Position)
	s.fluidNeighbors, s.boundaryNeighbors = findFluidNeighbors(s.Grid, s.Fluid.Position, s.Boundary.Position, s.Kernel.SupportRadius())

	s.predictAdvection()
	s.pressureSolve()
	s.integrate()
}

// predictAdvection runs the three per-particle passes that precede the
// pressure solve: density; advection force, advection velocity, and d_ii;
// then predicted density, the pressure warm start, and a_ii.
func (s *IISPHSolver) predictAdvection() {
	f := s.Fluid
	dt := s.Params.Dt
	m0 := s.Params.M0()

	parallel.ForEach(f.N, func(i int) {
		f.Density[i] = s.computeDensity(i)
	})

	parallel.ForEach(f.N, func(i int) {
		f.Fadv[i] = s.computeAdvectionForce(i)
		f.Vadv[i] = f.Velocity[i].Add(f.Fadv[i].Scale(dt / m0))
		f.Dii[i] = s.computeDii(i)
	})

	parallel.ForEach(f.N, func(i int) {
		f.RhoAdv[i] = s.predictDensity(i)
		f.Pl[i] = 0.5 * f.Pressure[i]
		f.Aii[i] = s.computeAii(i)
	})
}

// computeDensity sums the SPH density contribution of fluid and boundary
// neighbors.
func (s *IISPHSolver) computeDensity(i int) float64 {
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

// computeAdvectionForce returns gravity plus an artificial-viscosity term.
func (s *IISPHSolver) computeAdvectionForce(i int) core.Vec {
	f := s.Fluid
	m0 := s.Params.M0()
	force := s.Params.Gravity.Scale(m0)

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

// computeDii accumulates the d_ii coefficient used by the pressure solve.
func (s *IISPHSolver) computeDii(i int) core.Vec {
	f, b := s.Fluid, s.Boundary
	m0 := s.Params.M0()
	dt2 := s.Params.Dt * s.Params.Dt
	dii := core.NewVec(s.Params.Dim)
	rhoISq := f.Density[i] * f.Density[i]

	for _, j := range s.fluidNeighbors.of(i) {
		if j == i {
			continue
		}
		r := f.Position[i].Sub(f.Position[j])
		dii = dii.Add(s.Kernel.GradW(r).Scale(-m0 / rhoISq))
	}
	for _, j := range s.boundaryNeighbors.of(i) {
		r := f.Position[i].Sub(b.Position[j])
		dii = dii.Add(s.Kernel.GradW(r).Scale(-b.Psi[j] / rhoISq))
	}
	return dii.Scale(dt2)
}

// predictDensity estimates the density that would result from advecting
// with Vadv alone, before any pressure force is applied.
func (s *IISPHSolver) predictDensity(i int) float64 {
	f, b := s.Fluid, s.Boundary
	m0 := s.Params.M0()
	sum := 0.0

	for _, j := range s.fluidNeighbors.of(i) {
		if j == i {
			continue
		}
		r := f.Position[i].Sub(f.Position[j])
		vadv := f.Vadv[i].Sub(f.Vadv[j])
		sum += m0 * vadv.Dot(s.Kernel.GradW(r))
	}
	for _, j := range s.boundaryNeighbors.of(i) {
		r := f.Position[i].Sub(b.Position[j])
		sum += b.Psi[j] * f.Vadv[i].Dot(s.Kernel.GradW(r))
	}
	return f.Density[i] + s.Params.Dt*sum
}

// dji is the shared d_ji coefficient:
// d_ji := (dt^2 * m0 / rho_i^2) * gradW(x_i - x_j).
func (s *IISPHSolver) dji(i int, r core.Vec) core.Vec {
	rhoI := s.Fluid.Density[i]
	m0 := s.Params.M0()
	dt2 := s.Params.Dt * s.Params.Dt
	return s.Kernel.GradW(r).Scale(dt2 * m0 / (rhoI * rhoI))
}

// computeAii accumulates the diagonal coefficient a_ii of the pressure
// Poisson equation.
func (s *IISPHSolver) computeAii(i int) float64 {
	f, b := s.Fluid, s.Boundary
	m0 := s.Params.M0()
	aii := 0.0

	for _, j := range s.fluidNeighbors.of(i) {
		if j == i {
			continue
		}
		r := f.Position[i].Sub(f.Position[j])
		d := f.Dii[i].Sub(s.dji(i, r))
		aii += m0 * d.Dot(s.Kernel.GradW(r))
	}
	for _, j := range s.boundaryNeighbors.of(i) {
		r := f.Position[i].Sub(b.Position[j])
		aii += b.Psi[j] * f.Dii[i].Dot(s.Kernel.GradW(r))
	}
	return aii
}

// pressureSolve runs the relaxed-Jacobi pressure iteration to convergence
// or until MaxPressureIterations is reached.
func (s *IISPHSolver) pressureSolve() {
	f := s.Fluid
	l := 0
	avgDensity := 0.0

	for (avgDensity-s.Params.Rho0) > s.Params.Eta || l < 2 {
		parallel.ForEach(f.N, func(i int) {
			f.SumDijPj[i] = s.storeSumDijPj(i)
		})

		parallel.ForEach(f.N, func(i int) {
			s.computePressure(i)
		})

		sum := 0.0
		for i := 0; i < f.N; i++ {
			sum += f.RhoCorr[i]
		}
		avgDensity = sum / float64(f.N)
		l++

		if l >= MaxPressureIterations {
			if s.OnWarning != nil {
				s.OnWarning("iisph: pressure solver reached the iteration cap without converging")
			}
			break
		}
	}

	s.LastIterations = l
	s.LastAvgDensity = avgDensity
}

// storeSumDijPj accumulates sum_j d_ij * p_j over fluid neighbors.
func (s *IISPHSolver) storeSumDijPj(i int) core.Vec {
	f := s.Fluid
	m0 := s.Params.M0()
	dt2 := s.Params.Dt * s.Params.Dt
	sum := core.NewVec(s.Params.Dim)

	for _, j := range s.fluidNeighbors.of(i) {
		if j == i {
			continue
		}
		r := f.Position[i].Sub(f.Position[j])
		coeff := -m0 * f.Pressure[j] / (f.Density[j] * f.Density[j])
		sum = sum.Add(s.Kernel.GradW(r).Scale(coeff))
	}
	return sum.Scale(dt2)
}

// computePressure applies the relaxed-Jacobi pressure update and clamps
// the result to be non-negative. It writes Pressure, Pl, and RhoCorr.
func (s *IISPHSolver) computePressure(i int) {
	f, b := s.Fluid, s.Boundary
	m0 := s.Params.M0()

	sum := 0.0
	for _, j := range s.fluidNeighbors.of(i) {
		if j == i {
			continue
		}
		r := f.Position[i].Sub(f.Position[j])
		dji := s.dji(i, r)
		aux := f.SumDijPj[i].Sub(f.Dii[j].Scale(f.Pl[j])).Sub(f.SumDijPj[j].Sub(dji.Scale(f.Pl[i])))
		sum += m0 * aux.Dot(s.Kernel.GradW(r))
	}
	for _, j := range s.boundaryNeighbors.of(i) {
		r := f.Position[i].Sub(b.Position[j])
		sum += b.Psi[j] * f.SumDijPj[i].Dot(s.Kernel.GradW(r))
	}

	rhoCorr := f.RhoAdv[i] + sum
	prev := f.Pl[i]

	var pl float64
	if math.Abs(f.Aii[i]) > epsilon {
		pl = (1-s.Params.Omega)*prev + (s.Params.Omega/f.Aii[i])*(s.Params.Rho0-rhoCorr)
	} else {
		pl = 0
	}

	p := math.Max(pl, 0)
	f.Pressure[i] = p
	f.Pl[i] = p
	f.RhoCorr[i] = rhoCorr + f.Aii[i]*prev
}

const epsilon = 2.220446049250313e-16 // float64 machine epsilon

// integrate computes pressure forces, then integrates velocity and
// position.
func (s *IISPHSolver) integrate() {
	f := s.Fluid
	dt := s.Params.Dt
	m0 := s.Params.M0()

	parallel.ForEach(f.N, func(i int) {
		f.Fp[i] = s.computePressureForce(i)
	})

	parallel.ForEach(f.N, func(i int) {
		f.Velocity[i] = f.Vadv[i].Add(f.Fp[i].Scale(dt / m0))
		newPos := f.Position[i].Add(f.Velocity[i].Scale(dt))
		s.applyContainment(i, newPos)
	})
}

// computePressureForce sums the symmetric pressure force from fluid and
// boundary neighbors.
func (s *IISPHSolver) computePressureForce(i int) core.Vec {
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

// applyContainment enforces the solver's containment policy: the clamp
// policy keeps the particle inside the domain and reconciles velocity; the
// reflection policy reports a divergence instead of attempting recovery.
func (s *IISPHSolver) applyContainment(i int, newPos core.Vec) {
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
