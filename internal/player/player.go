package player

import (
	"voxel-sandbox/internal/physics"
	"voxel-sandbox/internal/profiling"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	Width     = 0.6
	Height    = 1.8
	EyeHeight = 1.6
)

// EyeOffset places the camera at the centre of the body, just below the top.
var EyeOffset = mgl32.Vec3{Width / 2, EyeHeight, Width / 2}

// Player is the controllable body: kinematic state, view rotation and the
// tuning it moves with.
type Player struct {
	physics.Body
	Rotation Rotation
	Config   Config
	Bounds   cube.BBox
}

// New creates a player standing at spawn.
func New(spawn mgl32.Vec3, cfg Config) *Player {
	return &Player{
		Body:   physics.Body{Position: spawn},
		Config: cfg,
		Bounds: physics.BodyBox(Width, Height),
	}
}

// Teleport moves the player to pos. Velocity is kept.
func (p *Player) Teleport(pos mgl32.Vec3) {
	p.Position = pos
}

// Update runs one tick: look, steer, then move against the world.
func (p *Player) Update(dt float32, in Intent, q physics.Occupancy) {
	defer profiling.Track("player.Update")()
	p.Rotation.Apply(in.LookDX, in.LookDY, p.Config.MouseSensitivity)
	p.Body = UpdateVelocity(p.Body, p.Rotation, p.Config, in, dt)
	p.Body = physics.Resolve(p.Body, p.Bounds, dt, q)
}

// Eye returns the camera position.
func (p *Player) Eye() mgl32.Vec3 {
	return Eye(p.Position, EyeOffset)
}

// ViewMatrix returns the look-at matrix for the player's camera.
func (p *Player) ViewMatrix() mgl32.Mat4 {
	eye := p.Eye()
	return mgl32.LookAtV(eye, LookTarget(eye, p.Rotation), mgl32.Vec3{0, 1, 0})
}
