package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical control, independent of the physical key bound to it.
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionReset
	ActionToggleShader
	ActionToggleHUD
	ActionPause
	ActionCount // sentinel for array sizing
)

var actionNames = [ActionCount]string{
	ActionMoveForward:  "forward",
	ActionMoveBackward: "backward",
	ActionMoveLeft:     "left",
	ActionMoveRight:    "right",
	ActionJump:         "jump",
	ActionReset:        "reset",
	ActionToggleShader: "toggle_shader",
	ActionToggleHUD:    "toggle_hud",
	ActionPause:        "pause",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Manager tracks held actions, per-frame press edges and the mouse delta.
type Manager struct {
	mu sync.RWMutex

	keyToActions map[glfw.Key][]Action

	current      [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	haveCursor     bool
	lastX, lastY   float64
	deltaX, deltaY float64
}

// NewManager creates a Manager with the default bindings.
func NewManager() *Manager {
	m := &Manager{keyToActions: make(map[glfw.Key][]Action)}

	m.BindKey(glfw.KeyW, ActionMoveForward)
	m.BindKey(glfw.KeyS, ActionMoveBackward)
	m.BindKey(glfw.KeyA, ActionMoveLeft)
	m.BindKey(glfw.KeyD, ActionMoveRight)
	m.BindKey(glfw.KeySpace, ActionJump)
	m.BindKey(glfw.KeyR, ActionReset)
	m.BindKey(glfw.KeyF, ActionToggleShader)
	m.BindKey(glfw.KeyF3, ActionToggleHUD)
	m.BindKey(glfw.KeyEscape, ActionPause)

	return m
}

// BindKey adds a binding; one key may drive several actions.
func (m *Manager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// UnbindKey removes every action bound to key.
func (m *Manager) UnbindKey(key glfw.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keyToActions, key)
}

// HandleKeyEvent records a key transition. Edges are latched until PostUpdate.
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	actions, ok := m.keyToActions[key]
	if !ok {
		return
	}
	pressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range actions {
		if pressed && !m.current[act] {
			m.justPressed[act] = true
		}
		if !pressed && m.current[act] {
			m.justReleased[act] = true
		}
		m.current[act] = pressed
	}
}

// HandleCursorPos accumulates mouse movement since the last frame. The
// first sample only sets the reference point.
func (m *Manager) HandleCursorPos(x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.haveCursor {
		m.deltaX += x - m.lastX
		m.deltaY += y - m.lastY
	}
	m.lastX, m.lastY = x, y
	m.haveCursor = true
}

// ResetCursor drops the reference point, e.g. after the cursor was released
// and recaptured, so the jump is not read as movement.
func (m *Manager) ResetCursor() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.haveCursor = false
	m.deltaX, m.deltaY = 0, 0
}

// Attach installs the key and cursor callbacks on window.
func (m *Manager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		m.HandleKeyEvent(key, action)
	})
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		m.HandleCursorPos(x, y)
	})
}

// MouseDelta returns the movement accumulated this frame.
func (m *Manager) MouseDelta() (dx, dy float64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.deltaX, m.deltaY
}

// PostUpdate ends the frame: edges and the mouse delta are cleared.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.justPressed[:])
	clear(m.justReleased[:])
	m.deltaX, m.deltaY = 0, 0
}

// IsActive reports whether the action is held.
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current[action]
}

// JustPressed reports whether the action went down during this frame.
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justPressed[action]
}

// JustReleased reports whether the action went up during this frame.
func (m *Manager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justReleased[action]
}
