package crosshair

import (
	"voxel-sandbox/internal/graphics"
	renderer "voxel-sandbox/internal/graphics/renderer"
	"voxel-sandbox/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// DefaultSize is the arm length in normalized device units.
const DefaultSize = 0.02

// Lines returns the two line segments of a plus sign with arms of length
// size, as x,y pairs centred on the origin.
func Lines(size float32) []float32 {
	return []float32{
		-size, 0,
		size, 0,
		0, -size,
		0, size,
	}
}

// Crosshair draws a plus sign at the screen centre.
type Crosshair struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
	size   float32
}

// NewCrosshair creates a crosshair of DefaultSize.
func NewCrosshair() *Crosshair {
	return &Crosshair{size: DefaultSize}
}

// Init compiles the shader and uploads the vertices.
func (c *Crosshair) Init() error {
	var err error
	c.shader, err = graphics.LoadShader("crosshair.vert", "crosshair.frag")
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)
	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	vertices := Lines(c.size)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindVertexArray(0)
	return nil
}

// Render renders the crosshair
func (c *Crosshair) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderCrosshair")()
	gl.Disable(gl.DEPTH_TEST)
	c.shader.Use()
	c.shader.SetFloat("aspectRatio", ctx.Camera.AspectRatio)
	gl.BindVertexArray(c.vao)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINES, 0, 4)
	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
}

// SetViewport is a no-op; the aspect ratio comes from the camera.
func (c *Crosshair) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (c *Crosshair) Dispose() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
	}
	if c.vbo != 0 {
		gl.DeleteBuffers(1, &c.vbo)
	}
	if c.shader != nil {
		c.shader.Delete()
	}
}
