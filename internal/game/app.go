package game

import (
	"fmt"
	"time"

	"voxel-sandbox/internal/config"
	"voxel-sandbox/internal/graphics"
	"voxel-sandbox/internal/graphics/renderables/blocks"
	"voxel-sandbox/internal/graphics/renderables/crosshair"
	"voxel-sandbox/internal/graphics/renderables/hud"
	"voxel-sandbox/internal/graphics/renderer"
	"voxel-sandbox/internal/input"
	"voxel-sandbox/internal/profiling"
	"voxel-sandbox/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"
)

// slowFrame is the processing time above which a frame's top spans are logged.
const slowFrame = 16 * time.Millisecond

// App owns the window and everything drawn into it.
type App struct {
	window       *glfw.Window
	inputManager *input.Manager
	textures     *graphics.Textures
	renderer     *renderer.Renderer
	session      *Session

	fpsLimiter *FPSLimiter
	fpsCounter *FPSCounter
	lastTime   time.Time

	log zerolog.Logger
}

// NewApp builds the renderer for window and starts a session in w. The GL
// context of window must be current.
func NewApp(window *glfw.Window, w *world.World, s config.Settings, logger zerolog.Logger) (*App, error) {
	logger = logger.With().Str("component", "app").Logger()

	width, height := window.GetFramebufferSize()
	camera := graphics.NewCamera(width, height, s.Render.FOV)
	textures := graphics.NewTextures(logger)

	r, err := renderer.NewRenderer(camera,
		blocks.NewBlocks(textures, s.Render.Texture),
		crosshair.NewCrosshair(),
		hud.NewHUD(width, height),
	)
	if err != nil {
		textures.Dispose()
		return nil, fmt.Errorf("error creating renderer: %w", err)
	}
	r.UpdateViewport(width, height)

	now := time.Now()
	a := &App{
		window:       window,
		inputManager: input.NewManager(),
		textures:     textures,
		renderer:     r,
		session:      NewSession(w, s, logger),
		fpsLimiter:   NewFPSLimiter(s.Render.FPS),
		fpsCounter:   NewFPSCounter(now),
		lastTime:     now,
		log:          logger,
	}
	a.session.OnPauseChange = a.setCursorCaptured
	a.inputManager.Attach(window)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		a.renderer.UpdateViewport(width, height)
		a.RefreshRender()
	})
	return a, nil
}

// Session returns the running session.
func (a *App) Session() *Session {
	return a.session
}

// Run drives the frame loop until the window is closed.
func (a *App) Run() {
	a.log.Info().Int("fpsLimit", a.fpsLimiter.Limit(false)).Msg("entering main loop")
	for !a.window.ShouldClose() {
		a.tick()
	}
	a.log.Info().Msg("window closed")
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now() // Measure pure processing time
	now := startTick
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	a.session.Update(dt, a.inputManager)
	a.render(dt)

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()
	a.fpsCounter.Frame(time.Now())

	// Check if frame took too long
	if d := time.Since(startTick); d > slowFrame {
		a.log.Debug().
			Dur("took", d).
			Str("top", profiling.TopN(5)).
			Msg("slow frame")
	}

	a.inputManager.PostUpdate() // Clear "JustPressed" flags and the mouse delta

	a.fpsLimiter.Wait(a.session.Paused)
}

func (a *App) render(dt float64) {
	s := a.session
	a.renderer.Render(s.World, s.Player, renderer.Frame{
		DT:      dt,
		FPS:     a.fpsCounter.FPS(),
		Lit:     s.Lit,
		ShowHUD: s.ShowHUD,
	})
}

// RefreshRender repaints the current state, e.g. while a resize blocks the loop.
func (a *App) RefreshRender() {
	a.render(0)
	a.window.SwapBuffers()
}

// setCursorCaptured releases the cursor while paused and recaptures it on resume.
func (a *App) setCursorCaptured(paused bool) {
	if paused {
		a.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	} else {
		a.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	}
	a.inputManager.ResetCursor()
}

// Close releases GL resources. The window is left to the caller.
func (a *App) Close() {
	a.renderer.Dispose()
	a.textures.Dispose()
}
