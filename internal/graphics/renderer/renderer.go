package renderer

import (
	"voxel-sandbox/internal/graphics"
	"voxel-sandbox/internal/player"
	"voxel-sandbox/internal/profiling"
	"voxel-sandbox/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// SkyColor is the clear color.
var SkyColor = [3]float32{102.0 / 255, 191.0 / 255, 1}

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
}

// NewRenderer configures GL state and initializes every renderable in order.
func NewRenderer(camera *graphics.Camera, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r := &Renderer{
		renderables: rs,
		camera:      camera,
	}
	for i, rr := range rs {
		if err := rr.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, err
		}
	}
	return r, nil
}

// Frame is the per-frame input to Render.
type Frame struct {
	DT      float64
	FPS     float64
	Lit     bool
	ShowHUD bool
}

// Render clears the screen and draws every renderable.
func (r *Renderer) Render(w *world.World, p *player.Player, f Frame) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(SkyColor[0], SkyColor[1], SkyColor[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera:  r.camera,
		World:   w,
		Player:  p,
		DT:      f.DT,
		FPS:     f.FPS,
		View:    p.ViewMatrix(),
		Proj:    r.camera.ProjectionMatrix(),
		Lit:     f.Lit,
		ShowHUD: f.ShowHUD,
	}
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// Camera returns the camera instance
func (r *Renderer) Camera() *graphics.Camera {
	return r.camera
}

// UpdateViewport resizes the GL viewport, the camera and every renderable.
func (r *Renderer) UpdateViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
	for _, rr := range r.renderables {
		rr.SetViewport(width, height)
	}
}
