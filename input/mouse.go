// Package input maps raw pointer/keyboard events onto the simulation,
// scanning the fluid particle state through the solver interface rather
// than a raw particle slice.
package input

import (
	"math"

	"fluids/core"
	"fluids/simulation"
)

// ApplyExplosionForce pushes every fluid particle within forceRadius of
// the simulation-space point (x, y) outward, strongest at the center and
// falling off linearly to zero at the radius.
func ApplyExplosionForce(s simulation.Solver, point core.Vec, forceRadius, forceMagnitude float64) {
	forceRadiusSq := forceRadius * forceRadius

	for i := 0; i < s.FluidCount(); i++ {
		pos := s.FluidPosition(i)
		d := pos.Sub(point)
		distSq := d.LengthSquare()
		if distSq > forceRadiusSq || distSq < 1e-12 {
			continue
		}

		dist := math.Sqrt(distSq)
		falloff := 1.0 - dist/forceRadius
		impulse := d.Scale(falloff * forceMagnitude / dist)
		s.ApplyImpulse(i, impulse)
	}
}

// ScreenToSimulation converts a window-pixel coordinate into simulation
// space given the domain extent and window size.
func ScreenToSimulation(mouseX, mouseY, windowWidth, windowHeight int, domainMax core.Vec) core.Vec {
	out := core.NewVec(len(domainMax))
	out[0] = float64(mouseX) / float64(windowWidth) * domainMax[0]
	out[1] = float64(mouseY) / float64(windowHeight) * domainMax[1]
	return out
}
