// Package scene builds initial fluid and boundary particle layouts,
// grounded on the cube- and box-sampling routines of the reference
// IISPH/WCSPH solvers: each unit cell is seeded with 2^dim particles at
// the 0.25/0.75 sub-cell offsets, and boundary walls are sampled one
// cell (two particle layers) thick.
package scene

import "fluids/core"

// Box is an axis-aligned integer cell range [Min, Max) in grid-cell units,
// used both for the fluid block and for additional solid obstacles.
type Box struct {
	Min, Max [3]int
}

// BuildParams describes a 2D or 3D scene: the containing grid resolution,
// the fluid block, and any extra solid boxes beyond the outer walls.
// CellSize must equal the solver's h so sampled positions land in the same
// physical units as the spatial grid (cell size h, one cell per unit).
type BuildParams struct {
	Dim        int
	CellSize   float64
	Resolution [3]int // per-axis cell count, only the first Dim entries used
	FluidBlock Box
	SolidBoxes []Box
}

// subOffsets2D/3D are the 0.25/0.75 sub-cell sample offsets used to seed
// particles; 2^dim samples per cell.
var subOffsets2D = [][2]float64{{0.25, 0.25}, {0.75, 0.25}, {0.25, 0.75}, {0.75, 0.75}}

var subOffsets3D = [][3]float64{
	{0.25, 0.25, 0.25}, {0.75, 0.25, 0.25}, {0.25, 0.75, 0.25}, {0.75, 0.75, 0.25},
	{0.25, 0.25, 0.75}, {0.75, 0.25, 0.75}, {0.25, 0.75, 0.75}, {0.75, 0.75, 0.75},
}

// Build samples the fluid block and the domain's outer walls (plus any
// additional solid boxes) into fluid and boundary particle states sized
// to exactly the number of samples produced.
func Build(p BuildParams) (*core.FluidState, *core.BoundaryState) {
	fluidPos := sampleBox(p.Dim, p.FluidBlock)

	var boundaryPos []core.Vec
	boundaryPos = append(boundaryPos, sampleWalls(p.Dim, p.Resolution)...)
	for _, box := range p.SolidBoxes {
		boundaryPos = append(boundaryPos, sampleBox(p.Dim, box)...)
	}

	scale(fluidPos, p.CellSize)
	scale(boundaryPos, p.CellSize)

	fluid := core.NewFluidState(len(fluidPos), p.Dim)
	copy(fluid.Position, fluidPos)

	boundary := core.NewBoundaryState(len(boundaryPos), p.Dim)
	copy(boundary.Position, boundaryPos)

	return fluid, boundary
}

// scale multiplies every sampled cell-unit coordinate in place by
// cellSize, converting it to physical simulation units.
func scale(positions []core.Vec, cellSize float64) {
	for _, pos := range positions {
		for d := range pos {
			pos[d] *= cellSize
		}
	}
}

// sampleBox fills a solid cell range with 2^dim sub-cell samples per cell,
// the same density used for the fluid block.
func sampleBox(dim int, b Box) []core.Vec {
	var out []core.Vec
	switch dim {
	case 2:
		for j := b.Min[1]; j < b.Max[1]; j++ {
			for i := b.Min[0]; i < b.Max[0]; i++ {
				for _, off := range subOffsets2D {
					out = append(out, core.Vec{float64(i) + off[0], float64(j) + off[1]})
				}
			}
		}
	case 3:
		for k := b.Min[2]; k < b.Max[2]; k++ {
			for j := b.Min[1]; j < b.Max[1]; j++ {
				for i := b.Min[0]; i < b.Max[0]; i++ {
					for _, off := range subOffsets3D {
						out = append(out, core.Vec{float64(i) + off[0], float64(j) + off[1], float64(k) + off[2]})
					}
				}
			}
		}
	default:
		panic("scene: Build supports dim 2 or 3")
	}
	return out
}

// sampleWalls samples a one-cell-thick boundary shell (two particle
// layers, from the 0.25/0.75 offsets) around the full
// [0,Resolution) domain, matching sampleBoundaryCube's bottom/top/left/
// right strips (2D) generalized to a hollow box shell in 3D.
func sampleWalls(dim int, res [3]int) []core.Vec {
	switch dim {
	case 2:
		return sampleWalls2D(res)
	case 3:
		return sampleWalls3D(res)
	default:
		panic("scene: Build supports dim 2 or 3")
	}
}

func sampleWalls2D(res [3]int) []core.Vec {
	x0, y0, x1, y1 := 0, 0, res[0], res[1]
	var out []core.Vec

	row := func(i, j int) {
		out = append(out, core.Vec{float64(i) + 0.25, float64(j) + 0.25})
		out = append(out, core.Vec{float64(i) + 0.75, float64(j) + 0.25})
		out = append(out, core.Vec{float64(i) + 0.25, float64(j) + 0.75})
		out = append(out, core.Vec{float64(i) + 0.75, float64(j) + 0.75})
	}

	for i := x0; i < x1; i++ {
		row(i, y0)
		row(i, y1-1)
	}
	for j := y0 + 1; j < y1-1; j++ {
		row(x0, j)
		row(x1-1, j)
	}
	return out
}

func sampleWalls3D(res [3]int) []core.Vec {
	x0, y0, z0 := 0, 0, 0
	x1, y1, z1 := res[0], res[1], res[2]
	var out []core.Vec

	cell := func(i, j, k int) {
		for _, off := range subOffsets3D {
			out = append(out, core.Vec{float64(i) + off[0], float64(j) + off[1], float64(k) + off[2]})
		}
	}

	for k := z0; k < z1; k++ {
		for j := y0; j < y1; j++ {
			for i := x0; i < x1; i++ {
				onShell := i == x0 || i == x1-1 || j == y0 || j == y1-1 || k == z0 || k == z1-1
				if onShell {
					cell(i, j, k)
				}
			}
		}
	}
	return out
}
