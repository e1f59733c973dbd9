package game

import (
	"testing"

	"voxel-sandbox/internal/config"
	"voxel-sandbox/internal/input"
	"voxel-sandbox/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatWorld(t *testing.T, height int) *world.World {
	t.Helper()
	w := world.New(world.NewChunkStore(), world.NewFlatGenerator(height), zerolog.Nop())
	w.Init(2, 1, 2)
	return w
}

func testSettings(t *testing.T) config.Settings {
	t.Helper()
	s, err := config.Load("")
	require.NoError(t, err)
	return s
}

func press(im *input.Manager, key glfw.Key) {
	im.HandleKeyEvent(key, glfw.Press)
}

func TestSafeSpawn(t *testing.T) {
	w := flatWorld(t, 8)

	above := mgl32.Vec3{1, 24, 1}
	assert.Equal(t, above, SafeSpawn(w, above, 16))

	buried := SafeSpawn(w, mgl32.Vec3{1, 4, 1}, 16)
	assert.Equal(t, mgl32.Vec3{1, 8, 1}, buried)
}

func TestPlayerConfigFromSettings(t *testing.T) {
	s := testSettings(t)
	cfg := PlayerConfig(s.Player)
	assert.InDelta(t, 5, cfg.MoveSpeed, 1e-6)
	assert.InDelta(t, 15, cfg.Responsiveness, 1e-6)
	assert.InDelta(t, 8, cfg.JumpForce, 1e-6)
	assert.InDelta(t, -25, cfg.Gravity, 1e-6)
	assert.InDelta(t, 0.002, cfg.MouseSensitivity, 1e-9)
}

func TestIntentFrom(t *testing.T) {
	im := input.NewManager()
	press(im, glfw.KeyW)
	press(im, glfw.KeyA)
	press(im, glfw.KeySpace)
	im.HandleCursorPos(100, 100)
	im.HandleCursorPos(110, 95)

	in := IntentFrom(im, false)
	assert.True(t, in.Forward)
	assert.True(t, in.Left)
	assert.True(t, in.Jump)
	assert.False(t, in.Back)
	assert.False(t, in.Right)
	assert.InDelta(t, 10, in.LookDX, 1e-6)
	assert.InDelta(t, -5, in.LookDY, 1e-6)

	assert.Zero(t, IntentFrom(im, true), "paused input is ignored")
}

func TestSessionSpawnsAndFalls(t *testing.T) {
	s := NewSession(flatWorld(t, 8), testSettings(t), zerolog.Nop())
	assert.Equal(t, mgl32.Vec3{1, 24, 1}, s.Player.Position)
	assert.True(t, s.ShowHUD)

	im := input.NewManager()
	s.Update(5, im) // clamped to one max step
	assert.InDelta(t, 23.75, s.Player.Position.Y(), 1e-4)

	for range 200 {
		s.Update(1.0/60, im)
		im.PostUpdate()
	}
	assert.InDelta(t, 8, s.Player.Position.Y(), 1e-4)
	assert.True(t, s.Player.Grounded)
}

func TestSessionWalksForward(t *testing.T) {
	s := NewSession(flatWorld(t, 8), testSettings(t), zerolog.Nop())
	s.Player.Teleport(mgl32.Vec3{4, 8, 4})

	im := input.NewManager()
	press(im, glfw.KeyW)
	for range 60 {
		s.Update(1.0/60, im)
		im.PostUpdate()
	}
	assert.Greater(t, s.Player.Position.Z(), float32(7))
	assert.InDelta(t, 4, s.Player.Position.X(), 1e-4)
}

func TestSessionToggles(t *testing.T) {
	s := NewSession(flatWorld(t, 8), testSettings(t), zerolog.Nop())
	im := input.NewManager()

	press(im, glfw.KeyF)
	press(im, glfw.KeyF3)
	s.Update(1.0/60, im)
	im.PostUpdate()
	assert.True(t, s.Lit)
	assert.False(t, s.ShowHUD)

	// Held keys do not toggle again.
	s.Update(1.0/60, im)
	im.PostUpdate()
	assert.True(t, s.Lit)
	assert.False(t, s.ShowHUD)
}

func TestSessionReset(t *testing.T) {
	s := NewSession(flatWorld(t, 8), testSettings(t), zerolog.Nop())
	s.Player.Teleport(mgl32.Vec3{20, 8, 20})

	im := input.NewManager()
	press(im, glfw.KeyR)
	s.Update(1.0/60, im)

	pos := s.Player.Position
	assert.InDelta(t, 1, pos.X(), 1e-4)
	assert.InDelta(t, 1, pos.Z(), 1e-4)
	assert.InDelta(t, 32, pos.Y(), 0.1)
}

func TestSessionPause(t *testing.T) {
	s := NewSession(flatWorld(t, 8), testSettings(t), zerolog.Nop())
	var changes []bool
	s.OnPauseChange = func(paused bool) { changes = append(changes, paused) }

	im := input.NewManager()
	press(im, glfw.KeyEscape)
	s.Update(1.0/60, im)
	im.PostUpdate()
	require.True(t, s.Paused)

	before := s.Player.Position
	press(im, glfw.KeyR)
	for range 10 {
		s.Update(1.0/60, im)
		im.PostUpdate()
	}
	assert.Equal(t, before, s.Player.Position, "paused sessions do not simulate")

	im.HandleKeyEvent(glfw.KeyEscape, glfw.Release)
	press(im, glfw.KeyEscape)
	s.Update(1.0/60, im)
	assert.False(t, s.Paused)
	assert.Equal(t, []bool{true, false}, changes)
}
