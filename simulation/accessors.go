package simulation

import "fluids/core"

// Solver is the read/write surface shared by IISPHSolver and WCSPHSolver:
// enough to drive a step loop, render a snapshot, and apply an external
// impulse (e.g. from an interactive input device) without the caller
// knowing which pressure model is in use.
type Solver interface {
	Step()

	FluidCount() int
	FluidPosition(i int) core.Vec
	FluidVelocity(i int) core.Vec
	FluidDensity(i int) float64
	FluidPressure(i int) float64
	FluidColor(i int) [3]float64

	BoundaryCount() int
	BoundaryPosition(j int) core.Vec
	BoundaryColor(j int) [3]float64

	ApplyImpulse(i int, impulse core.Vec)
	NeighborCellSize() float64
}

// FluidCount, FluidPosition, etc. implement the read-only per-step
// snapshot contract callers use to drive rendering or telemetry without
// touching solver internals.

func (s *IISPHSolver) FluidCount() int               { return s.Fluid.N }
func (s *IISPHSolver) FluidPosition(i int) core.Vec   { return s.Fluid.Position[i] }
func (s *IISPHSolver) FluidVelocity(i int) core.Vec   { return s.Fluid.Velocity[i] }
func (s *IISPHSolver) FluidDensity(i int) float64     { return s.Fluid.Density[i] }
func (s *IISPHSolver) FluidPressure(i int) float64    { return s.Fluid.Pressure[i] }
func (s *IISPHSolver) FluidColor(i int) [3]float64 {
	return s.Colors.FluidColor(s.Fluid.Density[i], s.Params.Rho0)
}

func (s *IISPHSolver) BoundaryCount() int             { return s.Boundary.N }
func (s *IISPHSolver) BoundaryPosition(j int) core.Vec { return s.Boundary.Position[j] }
func (s *IISPHSolver) BoundaryColor(j int) [3]float64  { return s.Colors.Wall }

// ApplyImpulse adds impulse directly to fluid particle i's velocity,
// letting an external driver (e.g. interactive input) perturb the
// simulation without bypassing the solver's own state.
func (s *IISPHSolver) ApplyImpulse(i int, impulse core.Vec) {
	s.Fluid.Velocity[i] = s.Fluid.Velocity[i].Add(impulse)
}

// NeighborCellSize exposes the grid's cell size to callers without
// reaching into solver internals. input.ApplyExplosionForce does not use
// it; it scans every fluid particle.
func (s *IISPHSolver) NeighborCellSize() float64 { return s.Grid.CellSize }

func (s *WCSPHSolver) FluidCount() int             { return s.Fluid.N }
func (s *WCSPHSolver) FluidPosition(i int) core.Vec { return s.Fluid.Position[i] }
func (s *WCSPHSolver) FluidVelocity(i int) core.Vec { return s.Fluid.Velocity[i] }
func (s *WCSPHSolver) FluidDensity(i int) float64   { return s.Fluid.Density[i] }
func (s *WCSPHSolver) FluidPressure(i int) float64  { return s.Fluid.Pressure[i] }
func (s *WCSPHSolver) FluidColor(i int) [3]float64 {
	return s.Colors.FluidColor(s.Fluid.Density[i], s.Params.Rho0)
}

func (s *WCSPHSolver) BoundaryCount() int              { return s.Boundary.N }
func (s *WCSPHSolver) BoundaryPosition(j int) core.Vec { return s.Boundary.Position[j] }
func (s *WCSPHSolver) BoundaryColor(j int) [3]float64  { return s.Colors.Wall }

// ApplyImpulse adds impulse directly to fluid particle i's velocity.
func (s *WCSPHSolver) ApplyImpulse(i int, impulse core.Vec) {
	s.Fluid.Velocity[i] = s.Fluid.Velocity[i].Add(impulse)
}

// NeighborCellSize exposes the grid's cell size, see IISPHSolver's method.
func (s *WCSPHSolver) NeighborCellSize() float64 { return s.Grid.CellSize }
