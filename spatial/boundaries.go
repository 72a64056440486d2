package spatial

import "fluids/core"

// Domain is the axis-aligned simulation domain [Min, Max].
type Domain struct {
	Min, Max core.Vec
}

// Contains reports whether pos lies within the domain on every axis.
func (d Domain) Contains(pos core.Vec) bool {
	for i := range pos {
		if pos[i] < d.Min[i] || pos[i] > d.Max[i] {
			return false
		}
	}
	return true
}

// ContainmentPolicy selects one of the two containment strategies;
// exactly one is chosen per scenario at build time.
type ContainmentPolicy int

const (
	// ClampAndZeroPenetration clamps any coordinate that exits the domain
	// and recomputes velocity so position and velocity stay consistent:
	// v_i := (x_clamped - x_old) / dt. Under this policy a fluid particle
	// can never leave the grid.
	ClampAndZeroPenetration ContainmentPolicy = iota
	// BoundaryParticleReflection relies entirely on Ψ-boundary pressure;
	// an escaping particle is a divergence symptom reported to the caller,
	// not corrected here.
	BoundaryParticleReflection
)

// Clamp coerces pos onto the domain, returning the clamped position and,
// if it moved, the velocity consistent with having arrived there in dt
// seconds from oldPos.
func Clamp(pos, oldPos core.Vec, d Domain, dt float64) (clamped, vel core.Vec, moved bool) {
	clamped = pos.Clone()
	for i := range clamped {
		if clamped[i] < d.Min[i] {
			clamped[i] = d.Min[i]
			moved = true
		} else if clamped[i] > d.Max[i] {
			clamped[i] = d.Max[i]
			moved = true
		}
	}
	if !moved {
		return clamped, nil, false
	}
	vel = clamped.Sub(oldPos).Scale(1 / dt)
	return clamped, vel, true
}
