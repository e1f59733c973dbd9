package player

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch keeps the view just short of straight up or down.
const MaxPitch = 1.5

// Rotation is the view orientation in radians.
type Rotation struct {
	Pitch float32
	Yaw   float32
}

// Apply turns the view by a mouse delta. Moving right turns right and
// moving down looks down.
func (r *Rotation) Apply(dx, dy, sensitivity float32) {
	r.Yaw -= dx * sensitivity
	r.Pitch += dy * sensitivity
	r.Pitch = math32.Max(-MaxPitch, math32.Min(MaxPitch, r.Pitch))
}

// Heading returns the rotation about +Y alone.
func (r Rotation) Heading() mgl32.Quat {
	return mgl32.QuatRotate(r.Yaw, mgl32.Vec3{0, 1, 0})
}

// Orientation returns yaw applied after pitch.
func (r Rotation) Orientation() mgl32.Quat {
	return r.Heading().Mul(mgl32.QuatRotate(r.Pitch, mgl32.Vec3{1, 0, 0}))
}

// Forward is the unit view direction. Zero rotation looks down +Z.
func (r Rotation) Forward() mgl32.Vec3 {
	return r.Orientation().Rotate(mgl32.Vec3{0, 0, 1})
}

// Eye returns the camera position for a body at position.
func Eye(position, offset mgl32.Vec3) mgl32.Vec3 {
	return position.Add(offset)
}

// LookTarget returns the point one unit in front of eye.
func LookTarget(eye mgl32.Vec3, r Rotation) mgl32.Vec3 {
	return eye.Add(r.Forward())
}
