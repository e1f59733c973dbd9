package physics

import (
	"voxel-sandbox/internal/profiling"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Occupancy answers whether a world-space point lies inside a solid voxel.
type Occupancy interface {
	Occupied(x, y, z float32) bool
}

// Body is the kinematic state of a moving box.
type Body struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Grounded bool
}

// broadPhaseMargin widens the swept region so cells touching it are still
// considered.
const broadPhaseMargin = 0.01

// axisOrder resolves vertical motion before the two horizontal axes.
var axisOrder = [3]int{1, 0, 2}

// SolidCells returns the unit boxes of every solid cell overlapping area.
func SolidCells(area cube.BBox, q Occupancy) []cube.BBox {
	lo, hi := area.Min(), area.Max()
	x0 := int(math32.Floor(lo[0] - broadPhaseMargin))
	y0 := int(math32.Floor(lo[1] - broadPhaseMargin))
	z0 := int(math32.Floor(lo[2] - broadPhaseMargin))
	x1 := int(math32.Ceil(hi[0] + broadPhaseMargin))
	y1 := int(math32.Ceil(hi[1] + broadPhaseMargin))
	z1 := int(math32.Ceil(hi[2] + broadPhaseMargin))

	var cells []cube.BBox
	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			for z := z0; z < z1; z++ {
				if q.Occupied(float32(x)+0.5, float32(y)+0.5, float32(z)+0.5) {
					cells = append(cells, CellBox(x, y, z))
				}
			}
		}
	}
	return cells
}

// Resolve moves body by its velocity over dt, stopping at solid cells one
// axis at a time. Velocity is zeroed on every clamped axis and Grounded is
// set when a fall was stopped by a floor.
func Resolve(body Body, local cube.BBox, dt float32, q Occupancy) Body {
	defer profiling.Track("physics.Resolve")()

	intended := body.Velocity.Mul(dt)
	current := WorldBox(local, body.Position)
	next := WorldBox(local, body.Position.Add(intended))
	cells := SolidCells(Union(current, next), q)

	applied := intended
	for _, axis := range axisOrder {
		applied[axis] = clampAxis(applied[axis], axis, current, cells)
	}

	out := body
	out.Position = body.Position.Add(applied)
	for axis := range 3 {
		if applied[axis] != intended[axis] {
			out.Velocity[axis] = 0
		}
	}
	out.Grounded = intended[1] < 0 && applied[1] > intended[1]
	return out
}

// clampAxis limits displacement d along axis so that box stops at the near
// face of any cell it would cross into. Only cells overlapping box on the
// other two axes take part.
func clampAxis(d float32, axis int, box cube.BBox, cells []cube.BBox) float32 {
	if d == 0 {
		return 0
	}
	a1 := (axis + 1) % 3
	a2 := (axis + 2) % 3
	lo, hi := box.Min()[axis], box.Max()[axis]
	for _, c := range cells {
		if !overlapsOn(box, c, a1) || !overlapsOn(box, c, a2) {
			continue
		}
		switch {
		case d > 0 && c.Min()[axis] >= hi:
			d = math32.Min(d, c.Min()[axis]-hi)
		case d < 0 && c.Max()[axis] <= lo:
			d = math32.Max(d, c.Max()[axis]-lo)
		}
	}
	return d
}

// GroundLevel scans the column containing (x, z) downwards from fromY and
// returns the top of the first solid cell at or above minY.
func GroundLevel(x, z, fromY float32, minY int, q Occupancy) (float32, bool) {
	cx := math32.Floor(x) + 0.5
	cz := math32.Floor(z) + 0.5
	for y := int(math32.Floor(fromY)); y >= minY; y-- {
		if q.Occupied(cx, float32(y)+0.5, cz) {
			return float32(y + 1), true
		}
	}
	return 0, false
}
