package blocks

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Frustum culling margin in blocks (inflates AABBs before testing)
const frustumMargin float32 = 1.0

type plane struct {
	a, b, c, d float32
}

// Frustum is the six clip planes of a projection*view matrix, in order
// left, right, bottom, top, near, far.
type Frustum [6]plane

// NewFrustum extracts the planes of clip.
func NewFrustum(clip mgl32.Mat4) Frustum {
	row := func(i int) [4]float32 {
		return [4]float32{clip[i], clip[i+4], clip[i+8], clip[i+12]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)
	combine := func(sign float32, r [4]float32) plane {
		return normalizePlane(plane{
			r3[0] + sign*r[0],
			r3[1] + sign*r[1],
			r3[2] + sign*r[2],
			r3[3] + sign*r[3],
		})
	}
	return Frustum{
		combine(1, r0), combine(-1, r0),
		combine(1, r1), combine(-1, r1),
		combine(1, r2), combine(-1, r2),
	}
}

func normalizePlane(p plane) plane {
	l := math32.Sqrt(p.a*p.a + p.b*p.b + p.c*p.c)
	if l == 0 {
		return p
	}
	return plane{p.a / l, p.b / l, p.c / l, p.d / l}
}

// Intersects reports whether box, grown by the culling margin, is at least
// partly inside the frustum.
func (f Frustum) Intersects(box cube.BBox) bool {
	box = box.Grow(frustumMargin)
	lo, hi := box.Min(), box.Max()
	for _, p := range f {
		// positive vertex for this plane normal
		px, py, pz := hi[0], hi[1], hi[2]
		if p.a < 0 {
			px = lo[0]
		}
		if p.b < 0 {
			py = lo[1]
		}
		if p.c < 0 {
			pz = lo[2]
		}
		if p.a*px+p.b*py+p.c*pz+p.d < 0 {
			return false
		}
	}
	return true
}
