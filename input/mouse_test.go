package input

import (
	"math"
	"testing"

	"fluids/core"
	"fluids/simulation"
)

var _ simulation.Solver = (*fakeSolver)(nil)

type fakeSolver struct {
	positions []core.Vec
	impulses  []core.Vec
}

func newFakeSolver(positions []core.Vec) *fakeSolver {
	impulses := make([]core.Vec, len(positions))
	for i := range impulses {
		impulses[i] = core.NewVec(2)
	}
	return &fakeSolver{positions: positions, impulses: impulses}
}

func (f *fakeSolver) Step()                                       {}
func (f *fakeSolver) FluidCount() int                              { return len(f.positions) }
func (f *fakeSolver) FluidPosition(i int) core.Vec                 { return f.positions[i] }
func (f *fakeSolver) FluidVelocity(i int) core.Vec                 { return core.NewVec(2) }
func (f *fakeSolver) FluidDensity(i int) float64                   { return 1000 }
func (f *fakeSolver) FluidPressure(i int) float64                  { return 0 }
func (f *fakeSolver) FluidColor(i int) [3]float64                  { return [3]float64{} }
func (f *fakeSolver) BoundaryCount() int                           { return 0 }
func (f *fakeSolver) BoundaryPosition(j int) core.Vec               { return core.NewVec(2) }
func (f *fakeSolver) BoundaryColor(j int) [3]float64                { return [3]float64{} }
func (f *fakeSolver) NeighborCellSize() float64                    { return 0.5 }
func (f *fakeSolver) ApplyImpulse(i int, impulse core.Vec) {
	f.impulses[i] = f.impulses[i].Add(impulse)
}

func TestApplyExplosionForcePushesNearbyParticlesOutward(t *testing.T) {
	s := newFakeSolver([]core.Vec{{1, 0}, {10, 10}})
	ApplyExplosionForce(s, core.Vec{0, 0}, 2.0, 100.0)

	if s.impulses[0].Length() == 0 {
		t.Fatal("expected particle within radius to receive an impulse")
	}
	if s.impulses[0][0] <= 0 {
		t.Fatalf("expected impulse to point away from the explosion center: got %v", s.impulses[0])
	}
	if s.impulses[1].Length() != 0 {
		t.Fatalf("particle far outside radius should receive no impulse: got %v", s.impulses[1])
	}
}

func TestApplyExplosionForceSkipsCoincidentParticle(t *testing.T) {
	s := newFakeSolver([]core.Vec{{0, 0}})
	ApplyExplosionForce(s, core.Vec{0, 0}, 2.0, 100.0)

	if s.impulses[0].Length() != 0 {
		t.Fatalf("a particle exactly at the explosion center should not divide by zero: got %v", s.impulses[0])
	}
}

func TestScreenToSimulationScalesByWindowSize(t *testing.T) {
	domainMax := core.Vec{10, 20}
	got := ScreenToSimulation(400, 300, 800, 600, domainMax)
	if !approxEqual(got[0], 5, 1e-9) || !approxEqual(got[1], 10, 1e-9) {
		t.Fatalf("ScreenToSimulation: got %v, want [5 10]", got)
	}
}

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
