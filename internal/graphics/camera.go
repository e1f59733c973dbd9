package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera handles the projection matrix
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

// NewCamera creates a perspective camera for a width x height viewport.
func NewCamera(width, height int, fov float32) *Camera {
	c := &Camera{
		FOV:       fov,
		NearPlane: 0.1,
		FarPlane:  1000.0,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio. A zero-sized viewport (minimized
// window) keeps the previous ratio.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		if c.AspectRatio == 0 {
			c.AspectRatio = 1
		}
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}
