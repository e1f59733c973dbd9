package physics

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// BodyBox returns a width x height x width box with its minimum corner at
// the local origin, the shape used for the player.
func BodyBox(width, height float32) cube.BBox {
	return cube.Box(0, 0, 0, width, height, width)
}

// WorldBox places a local bounding box at pos.
func WorldBox(local cube.BBox, pos mgl32.Vec3) cube.BBox {
	return local.Translate(pos)
}

// CellBox returns the unit box of the integer cell (x, y, z).
func CellBox(x, y, z int) cube.BBox {
	fx, fy, fz := float32(x), float32(y), float32(z)
	return cube.Box(fx, fy, fz, fx+1, fy+1, fz+1)
}

// Union returns the smallest box containing both a and b.
func Union(a, b cube.BBox) cube.BBox {
	amin, amax := a.Min(), a.Max()
	bmin, bmax := b.Min(), b.Max()
	return cube.Box(
		math32.Min(amin[0], bmin[0]), math32.Min(amin[1], bmin[1]), math32.Min(amin[2], bmin[2]),
		math32.Max(amax[0], bmax[0]), math32.Max(amax[1], bmax[1]), math32.Max(amax[2], bmax[2]),
	)
}

// overlapsOn reports whether a and b strictly overlap on the given axis.
func overlapsOn(a, b cube.BBox, axis int) bool {
	return a.Min()[axis] < b.Max()[axis] && a.Max()[axis] > b.Min()[axis]
}

// Overlaps reports whether a and b strictly overlap on all three axes.
// Boxes that only share a face do not overlap.
func Overlaps(a, b cube.BBox) bool {
	return overlapsOn(a, b, 0) && overlapsOn(a, b, 1) && overlapsOn(a, b, 2)
}
