package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestKeyEdges(t *testing.T) {
	m := NewManager()

	m.HandleKeyEvent(glfw.KeyW, glfw.Press)
	assert.True(t, m.IsActive(ActionMoveForward))
	assert.True(t, m.JustPressed(ActionMoveForward))

	m.PostUpdate()
	assert.True(t, m.IsActive(ActionMoveForward), "held keys survive the frame")
	assert.False(t, m.JustPressed(ActionMoveForward))

	m.HandleKeyEvent(glfw.KeyW, glfw.Repeat)
	assert.False(t, m.JustPressed(ActionMoveForward), "repeat is not a new press")

	m.HandleKeyEvent(glfw.KeyW, glfw.Release)
	assert.False(t, m.IsActive(ActionMoveForward))
	assert.True(t, m.JustReleased(ActionMoveForward))
}

func TestDefaultBindings(t *testing.T) {
	m := NewManager()
	keys := map[glfw.Key]Action{
		glfw.KeyS:      ActionMoveBackward,
		glfw.KeyA:      ActionMoveLeft,
		glfw.KeyD:      ActionMoveRight,
		glfw.KeySpace:  ActionJump,
		glfw.KeyR:      ActionReset,
		glfw.KeyF:      ActionToggleShader,
		glfw.KeyEscape: ActionPause,
	}
	for key, action := range keys {
		m.HandleKeyEvent(key, glfw.Press)
		assert.True(t, m.JustPressed(action), "%v", action)
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	m := NewManager()
	m.HandleKeyEvent(glfw.KeyZ, glfw.Press)
	for a := range ActionCount {
		assert.False(t, m.IsActive(a), "%v", a)
	}

	m.UnbindKey(glfw.KeyW)
	m.HandleKeyEvent(glfw.KeyW, glfw.Press)
	assert.False(t, m.IsActive(ActionMoveForward))

	m.BindKey(glfw.KeyUp, ActionMoveForward)
	m.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	assert.True(t, m.IsActive(ActionMoveForward))
}

func TestMouseDelta(t *testing.T) {
	m := NewManager()
	m.HandleCursorPos(100, 100)
	dx, dy := m.MouseDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	m.HandleCursorPos(110, 95)
	m.HandleCursorPos(115, 90)
	dx, dy = m.MouseDelta()
	assert.Equal(t, 15.0, dx)
	assert.Equal(t, -10.0, dy)

	m.PostUpdate()
	dx, dy = m.MouseDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	m.ResetCursor()
	m.HandleCursorPos(500, 500)
	dx, _ = m.MouseDelta()
	assert.Zero(t, dx, "first sample after a reset only sets the reference")
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "toggle_shader", ActionToggleShader.String())
	assert.Equal(t, "unknown", Action(-1).String())
	assert.False(t, NewManager().IsActive(ActionCount))
}
