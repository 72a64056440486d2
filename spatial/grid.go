package spatial

import (
	"math"

	"fluids/core"
)

// Grid is the uniform spatial grid: cell size equals h, cell id =
// i + j*nx [+ k*nx*ny]. Fluid and boundary particles are kept in two
// parallel cell-index lists, each stored as a compressed-sparse-row pair
// (offsets + indices) rather than a slice-of-slices, for cache locality —
// rebuilding a CSR table allocates two flat slices per step instead of
// churning one slice per cell.
type Grid struct {
	CellSize float64
	Dim      int
	Res      []int // resolution per axis, length Dim

	fluidOffsets []int
	fluidIndices []int

	boundaryOffsets []int
	boundaryIndices []int
}

// NewGrid builds a grid with the given cell size, dimension, and per-axis
// cell resolution.
func NewGrid(cellSize float64, dim int, res []int) *Grid {
	if len(res) != dim {
		panic("spatial: NewGrid resolution length must equal dim")
	}
	n := numCells(res)
	return &Grid{
		CellSize:        cellSize,
		Dim:             dim,
		Res:             append([]int(nil), res...),
		fluidOffsets:    make([]int, n+1),
		boundaryOffsets: make([]int, n+1),
	}
}

func numCells(res []int) int {
	n := 1
	for _, r := range res {
		n *= r
	}
	return n
}

// cellCoord returns the integer cell coordinates containing pos.
func (g *Grid) cellCoord(pos core.Vec) []int {
	coord := make([]int, g.Dim)
	for d := 0; d < g.Dim; d++ {
		coord[d] = int(math.Floor(pos[d] / g.CellSize))
	}
	return coord
}

// cellID converts cell coordinates to a flat index using
// id = i + j*nx [+ k*nx*ny], or (-1, false) if out of bounds.
func (g *Grid) cellID(coord []int) (int, bool) {
	id := 0
	stride := 1
	for d := 0; d < g.Dim; d++ {
		if coord[d] < 0 || coord[d] >= g.Res[d] {
			return -1, false
		}
		id += coord[d] * stride
		stride *= g.Res[d]
	}
	return id, true
}

// InBounds reports whether pos lies within the grid's domain.
func (g *Grid) InBounds(pos core.Vec) bool {
	_, ok := g.cellID(g.cellCoord(pos))
	return ok
}

// Rebuild clears every cell list and reinserts each in-bounds fluid and
// boundary particle. Boundary positions rarely change (they are static);
// callers that know boundaries are immutable may call RebuildFluid alone
// every step and RebuildBoundary once at init.
func (g *Grid) Rebuild(fluidPositions, boundaryPositions []core.Vec) {
	g.RebuildFluid(fluidPositions)
	g.RebuildBoundary(boundaryPositions)
}

// RebuildFluid rebuilds only the fluid cell lists.
func (g *Grid) RebuildFluid(positions []core.Vec) {
	g.fluidOffsets, g.fluidIndices = buildCSR(g, positions)
}

// RebuildBoundary rebuilds only the boundary cell lists.
func (g *Grid) RebuildBoundary(positions []core.Vec) {
	g.boundaryOffsets, g.boundaryIndices = buildCSR(g, positions)
}

// buildCSR performs a stable counting sort of positions into per-cell
// buckets, preserving each particle's original index order within its
// cell — iteration order within a cell is deterministic.
func buildCSR(g *Grid, positions []core.Vec) ([]int, []int) {
	n := numCells(g.Res)
	offsets := make([]int, n+1)
	cellOf := make([]int, len(positions))

	for i, pos := range positions {
		id, ok := g.cellID(g.cellCoord(pos))
		if !ok {
			cellOf[i] = -1
			continue
		}
		cellOf[i] = id
		offsets[id+1]++
	}
	for c := 0; c < n; c++ {
		offsets[c+1] += offsets[c]
	}

	indices := make([]int, offsets[n])
	cursor := append([]int(nil), offsets...)
	for i, id := range cellOf {
		if id < 0 {
			continue
		}
		indices[cursor[id]] = i
		cursor[id]++
	}
	return offsets, indices
}

// window returns the number of cells to each side needed to cover radius,
// given the grid's cell size: ceil(radius/cellSize). For radius = 2h and
// cell size = h this is 2, i.e. a 5^dim neighborhood, not 3^dim.
func (g *Grid) window(radius float64) int {
	return int(math.Ceil(radius / g.CellSize))
}

// Neighbors returns every fluid and boundary particle index within radius
// of pos (squared distance strictly less than radius*radius). The
// returned slices are freshly allocated; i itself is included among the
// fluid results when pos equals a fluid particle's own position and that
// particle is present in fluidPositions — callers perform the
// self-exclusion test by index, not position, since two distinct
// particles can share the same position.
func (g *Grid) Neighbors(pos core.Vec, radius float64, fluidPositions, boundaryPositions []core.Vec) (fluid, boundary []int) {
	if !g.InBounds(pos) {
		return nil, nil
	}
	radiusSq := radius * radius
	w := g.window(radius)
	center := g.cellCoord(pos)

	forEachCellInWindow(g, center, w, func(id int) {
		fluid = gatherWithinRadius(g.fluidOffsets, g.fluidIndices, id, fluidPositions, pos, radiusSq, fluid)
		boundary = gatherWithinRadius(g.boundaryOffsets, g.boundaryIndices, id, boundaryPositions, pos, radiusSq, boundary)
	})
	return fluid, boundary
}

func gatherWithinRadius(offsets, indices []int, cellID int, positions []core.Vec, pos core.Vec, radiusSq float64, out []int) []int {
	for _, idx := range indices[offsets[cellID]:offsets[cellID+1]] {
		d := pos.Sub(positions[idx])
		if d.LengthSquare() < radiusSq {
			out = append(out, idx)
		}
	}
	return out
}

// forEachCellInWindow enumerates every in-bounds cell within w cells of
// center along each axis and invokes fn with its flat id.
func forEachCellInWindow(g *Grid, center []int, w int, fn func(id int)) {
	coord := make([]int, g.Dim)
	var recurse func(d int)
	recurse = func(d int) {
		if d == g.Dim {
			if id, ok := g.cellID(coord); ok {
				fn(id)
			}
			return
		}
		lo := center[d] - w
		hi := center[d] + w
		for c := lo; c <= hi; c++ {
			coord[d] = c
			recurse(d + 1)
		}
	}
	recurse(0)
}
