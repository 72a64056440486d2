package simulation

import "fmt"

// ConfigError reports an init-time configuration problem: a zero-sized
// fluid block, a grid too small to contain it, eta <= 0, or h <= 0. No
// partial solver state is retained when this is returned.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("simulation: invalid configuration: %s", e.Reason)
}

// DegenerateBoundaryError reports a boundary particle whose Ψ sampling sum
// is zero (no boundary neighbors within h).
type DegenerateBoundaryError struct {
	Index int
}

func (e *DegenerateBoundaryError) Error() string {
	return fmt.Sprintf("simulation: degenerate boundary sampling at index %d: sum W == 0", e.Index)
}

// DivergenceReport is the state snapshot attached to a divergence event:
// a fluid particle position left the grid after integration under the
// no-clamp containment policy.
type DivergenceReport struct {
	Index    int
	Position []float64
	Velocity []float64
	Density  float64
	Pressure float64
}

// DivergenceHandler is installed by the host to receive divergence events.
// The core never panics the process on divergence; it invokes this
// callback and leaves the diverging particle at its previous position.
// The step is not halted: the other particles finish integrating.
type DivergenceHandler func(DivergenceReport)
