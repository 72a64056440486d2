package core

import "math"

// Params holds the global, immutable-after-init simulation parameters.
type Params struct {
	Dim     int     // 2 or 3
	H       float64 // particle spacing / kernel smoothing length
	Rho0    float64 // rest density
	Nu      float64 // kinematic viscosity
	Eta     float64 // compressibility tolerance
	Dt      float64 // time step
	Omega   float64 // Jacobi relaxation factor, (0,1]
	Gravity Vec     // gravity vector, length Dim
}

// M0 returns the rest mass m0 = rho0 * h^dim.
func (p Params) M0() float64 {
	return p.Rho0 * math.Pow(p.H, float64(p.Dim))
}

// ColorScheme computes presentation colors from normalized density ratios.
// It is injected by the caller rather than hardcoded — the simulation
// core has no opinion on what "dense" or "light" looks like.
type ColorScheme struct {
	Light [3]float64
	Dense [3]float64
	Wall  [3]float64
}

// DefaultColorScheme returns a reasonable light/dense/wall palette; callers
// that care about presentation should supply their own.
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Light: [3]float64{0.6, 0.8, 1.0},
		Dense: [3]float64{0.05, 0.2, 0.9},
		Wall:  [3]float64{0.5, 0.5, 0.5},
	}
}

// FluidColor blends light->dense by density/rho0.
func (c ColorScheme) FluidColor(density, rho0 float64) [3]float64 {
	t := density / rho0
	var out [3]float64
	for i := 0; i < 3; i++ {
		out[i] = c.Light[i] + t*(c.Dense[i]-c.Light[i])
	}
	return out
}

// FluidState is the struct-of-arrays store for every dynamic (fluid)
// particle, sized once at init and never resized during simulation.
type FluidState struct {
	Dim int
	N   int

	Position []Vec
	Velocity []Vec
	Density  []float64
	Pressure []float64

	// scratch, overwritten every step
	Fadv     []Vec
	Fp       []Vec
	Vadv     []Vec
	Dii      []Vec
	Aii      []float64
	SumDijPj []Vec
	RhoAdv   []float64
	RhoCorr  []float64
	Pl       []float64
}

// NewFluidState allocates a fluid particle array of size n with the given
// dimension. All scratch and state fields are zero-valued.
func NewFluidState(n, dim int) *FluidState {
	fs := &FluidState{Dim: dim, N: n}
	fs.Position = makeVecSlice(n, dim)
	fs.Velocity = makeVecSlice(n, dim)
	fs.Density = make([]float64, n)
	fs.Pressure = make([]float64, n)
	fs.Fadv = makeVecSlice(n, dim)
	fs.Fp = makeVecSlice(n, dim)
	fs.Vadv = makeVecSlice(n, dim)
	fs.Dii = makeVecSlice(n, dim)
	fs.Aii = make([]float64, n)
	fs.SumDijPj = makeVecSlice(n, dim)
	fs.RhoAdv = make([]float64, n)
	fs.RhoCorr = make([]float64, n)
	fs.Pl = make([]float64, n)
	return fs
}

// BoundaryState is the struct-of-arrays store for every static (boundary)
// particle. Positions are immutable after init; Psi is computed once.
type BoundaryState struct {
	Dim int
	N   int

	Position []Vec
	Psi      []float64
}

// NewBoundaryState allocates a boundary particle array of size n.
func NewBoundaryState(n, dim int) *BoundaryState {
	return &BoundaryState{
		Dim:      dim,
		N:        n,
		Position: makeVecSlice(n, dim),
		Psi:      make([]float64, n),
	}
}

func makeVecSlice(n, dim int) []Vec {
	out := make([]Vec, n)
	for i := range out {
		out[i] = NewVec(dim)
	}
	return out
}
