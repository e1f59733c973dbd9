package player

import (
	"voxel-sandbox/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// Config is the movement tuning of a player.
type Config struct {
	MoveSpeed        float32
	Responsiveness   float32
	JumpForce        float32
	Gravity          float32
	MouseSensitivity float32
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		MoveSpeed:        5,
		Responsiveness:   15,
		JumpForce:        8,
		Gravity:          -25,
		MouseSensitivity: 0.002,
	}
}

// Intent is the player input sampled for one tick.
type Intent struct {
	Forward, Back, Left, Right bool
	Jump                       bool
	LookDX, LookDY             float32
}

// localMove returns the unnormalized move direction in the body frame.
// Forward is +Z and left is +X.
func (in Intent) localMove() mgl32.Vec3 {
	var v mgl32.Vec3
	if in.Forward {
		v[2] += 1
	}
	if in.Back {
		v[2] -= 1
	}
	if in.Right {
		v[0] -= 1
	}
	if in.Left {
		v[0] += 1
	}
	return v
}

// TargetVelocity is the horizontal velocity the intent asks for, rotated by yaw.
func TargetVelocity(in Intent, rot Rotation, cfg Config) mgl32.Vec3 {
	local := in.localMove()
	if local.Len() == 0 {
		return mgl32.Vec3{}
	}
	world := rot.Heading().Rotate(local.Normalize())
	return world.Mul(cfg.MoveSpeed)
}

// UpdateVelocity steers the horizontal velocity towards the target, adds
// gravity, and applies the jump impulse when standing on the ground.
func UpdateVelocity(b physics.Body, rot Rotation, cfg Config, in Intent, dt float32) physics.Body {
	target := TargetVelocity(in, rot, cfg)
	delta := mgl32.Vec3{
		(target[0] - b.Velocity[0]) * cfg.Responsiveness,
		cfg.Gravity,
		(target[2] - b.Velocity[2]) * cfg.Responsiveness,
	}.Mul(dt)
	if in.Jump && b.Grounded {
		delta[1] += cfg.JumpForce
	}
	b.Velocity = b.Velocity.Add(delta)
	return b
}
