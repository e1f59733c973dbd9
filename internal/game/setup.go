package game

import (
	"fmt"

	"voxel-sandbox/internal/config"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupWindow creates the GL 4.1 core window and makes its context current.
// glfw.Init must have been called on the locked main thread.
func SetupWindow(ws config.WindowSettings) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(ws.Width, ws.Height, ws.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating window: %w", err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("error initializing OpenGL: %w", err)
	}

	// Disable V-Sync; we'll use our own FPS limiter
	glfw.SwapInterval(0)
	if ws.Maximize {
		window.Maximize()
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return window, nil
}
