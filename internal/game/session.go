package game

import (
	"voxel-sandbox/internal/config"
	"voxel-sandbox/internal/input"
	"voxel-sandbox/internal/physics"
	"voxel-sandbox/internal/player"
	"voxel-sandbox/internal/profiling"
	"voxel-sandbox/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// maxStep bounds the simulated time of one tick so a long hitch cannot
// move the body through a wall.
const maxStep = 0.1

// Session is the simulated state of a running game: the world, the player
// and the display toggles driven by the keyboard.
type Session struct {
	World  *world.World
	Player *player.Player

	Paused  bool
	Lit     bool
	ShowHUD bool

	resetPoint mgl32.Vec3
	log        zerolog.Logger

	// OnPauseChange is called after Esc flips the pause state.
	OnPauseChange func(paused bool)
}

// PlayerConfig maps the configured tuning onto the player's.
func PlayerConfig(ps config.PlayerSettings) player.Config {
	return player.Config{
		MoveSpeed:        ps.MoveSpeed,
		Responsiveness:   ps.Responsiveness,
		JumpForce:        ps.JumpForce,
		Gravity:          ps.Gravity,
		MouseSensitivity: ps.MouseSensitivity,
	}
}

// NewSession places a player in w according to settings.
func NewSession(w *world.World, s config.Settings, logger zerolog.Logger) *Session {
	spawn := SafeSpawn(w, s.Player.SpawnPoint(), s.World.Height*world.ChunkSize)
	p := player.New(spawn, PlayerConfig(s.Player))

	logger = logger.With().Str("component", "session").Logger()
	logger.Info().
		Floats32("spawn", spawn[:]).
		Msg("player spawned")

	return &Session{
		World:      w,
		Player:     p,
		ShowHUD:    s.Render.HUD,
		resetPoint: s.Player.ResetPoint(),
		log:        logger,
	}
}

// SafeSpawn lifts spawn onto the surface of its column when the body's feet
// start inside terrain. top is the highest cell height worth scanning from.
func SafeSpawn(q physics.Occupancy, spawn mgl32.Vec3, top int) mgl32.Vec3 {
	if !q.Occupied(spawn[0], spawn[1], spawn[2]) {
		return spawn
	}
	if y, ok := physics.GroundLevel(spawn[0], spawn[2], float32(top), 0, q); ok {
		spawn[1] = y
	}
	return spawn
}

// IntentFrom samples the held movement keys and the mouse delta. A paused
// game produces no intent.
func IntentFrom(im *input.Manager, paused bool) player.Intent {
	if paused {
		return player.Intent{}
	}
	dx, dy := im.MouseDelta()
	return player.Intent{
		Forward: im.IsActive(input.ActionMoveForward),
		Back:    im.IsActive(input.ActionMoveBackward),
		Left:    im.IsActive(input.ActionMoveLeft),
		Right:   im.IsActive(input.ActionMoveRight),
		Jump:    im.IsActive(input.ActionJump),
		LookDX:  float32(dx),
		LookDY:  float32(dy),
	}
}

// Update applies this frame's key presses and advances the player by dt.
func (s *Session) Update(dt float64, im *input.Manager) {
	defer profiling.Track("session.Update")()

	if im.JustPressed(input.ActionPause) {
		s.Paused = !s.Paused
		s.log.Debug().Bool("paused", s.Paused).Msg("pause toggled")
		if s.OnPauseChange != nil {
			s.OnPauseChange(s.Paused)
		}
	}
	if s.Paused {
		return
	}

	if im.JustPressed(input.ActionReset) {
		s.Player.Teleport(s.resetPoint)
		s.log.Debug().Floats32("position", s.resetPoint[:]).Msg("player reset")
	}
	if im.JustPressed(input.ActionToggleShader) {
		s.Lit = !s.Lit
	}
	if im.JustPressed(input.ActionToggleHUD) {
		s.ShowHUD = !s.ShowHUD
	}

	step := float32(min(dt, maxStep))
	s.Player.Update(step, IntentFrom(im, false), s.World)

	if rebuilt := s.World.RebuildDirty(); rebuilt > 0 {
		s.log.Debug().Int("chunks", rebuilt).Msg("dirty chunks rebuilt")
	}
}
