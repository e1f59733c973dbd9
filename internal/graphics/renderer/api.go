package renderer

import (
	"voxel-sandbox/internal/graphics"
	"voxel-sandbox/internal/player"
	"voxel-sandbox/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera *graphics.Camera
	World  *world.World
	Player *player.Player
	DT     float64
	FPS    float64
	View   mgl32.Mat4
	Proj   mgl32.Mat4
	// Lit selects the lighting shader in place of the default chunk shader.
	Lit bool
	// ShowHUD enables the text overlay.
	ShowHUD bool
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
