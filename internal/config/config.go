package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. VOXEL_RENDER_FPS.
const EnvPrefix = "VOXEL"

// WindowSettings controls the OS window.
type WindowSettings struct {
	Width    int    `mapstructure:"width"`
	Height   int    `mapstructure:"height"`
	Title    string `mapstructure:"title"`
	Maximize bool   `mapstructure:"maximize"`
}

// RenderSettings controls the frame loop and the chunk renderer.
type RenderSettings struct {
	FPS     int     `mapstructure:"fps"`
	FOV     float32 `mapstructure:"fov"`
	Texture string  `mapstructure:"texture"`
	HUD     bool    `mapstructure:"hud"`
}

// PlayerSettings is the movement tuning and spawn of the player.
type PlayerSettings struct {
	MoveSpeed        float32   `mapstructure:"moveSpeed"`
	Responsiveness   float32   `mapstructure:"responsiveness"`
	JumpForce        float32   `mapstructure:"jumpForce"`
	Gravity          float32   `mapstructure:"gravity"`
	MouseSensitivity float32   `mapstructure:"mouseSensitivity"`
	Spawn            []float32 `mapstructure:"spawn"`
	Reset            []float32 `mapstructure:"reset"`
}

// SpawnPoint returns Spawn as a vector.
func (p PlayerSettings) SpawnPoint() mgl32.Vec3 {
	return toVec3(p.Spawn)
}

// ResetPoint returns Reset as a vector.
func (p PlayerSettings) ResetPoint() mgl32.Vec3 {
	return toVec3(p.Reset)
}

func toVec3(v []float32) mgl32.Vec3 {
	var out mgl32.Vec3
	copy(out[:], v)
	return out
}

// Settings is the full runtime configuration.
type Settings struct {
	LogLevel string         `mapstructure:"logLevel"`
	Window   WindowSettings `mapstructure:"window"`
	Render   RenderSettings `mapstructure:"render"`
	World    WorldSettings  `mapstructure:"world"`
	Player   PlayerSettings `mapstructure:"player"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")

	v.SetDefault("window.width", 1500)
	v.SetDefault("window.height", 900)
	v.SetDefault("window.title", "Voxel Sandbox")
	v.SetDefault("window.maximize", true)

	v.SetDefault("render.fps", 150)
	v.SetDefault("render.fov", 60.0)
	v.SetDefault("render.texture", "resources/my_texture.png")
	v.SetDefault("render.hud", true)

	v.SetDefault("world.width", 16)
	v.SetDefault("world.height", 1)
	v.SetDefault("world.depth", 16)
	v.SetDefault("world.generator", GeneratorPerlin)
	v.SetDefault("world.seed", 0)
	v.SetDefault("world.flatHeight", 8)

	v.SetDefault("player.moveSpeed", 5.0)
	v.SetDefault("player.responsiveness", 15.0)
	v.SetDefault("player.jumpForce", 8.0)
	v.SetDefault("player.gravity", -25.0)
	v.SetDefault("player.mouseSensitivity", 0.002)
	v.SetDefault("player.spawn", []float32{1, 24, 1})
	v.SetDefault("player.reset", []float32{1, 32, 1})
}

// Load builds Settings from defaults, the optional config file at path
// (JSON, YAML or TOML by extension) and VOXEL_* environment variables.
// An empty path skips the file.
func Load(path string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings the game cannot start with.
func (s Settings) Validate() error {
	var errs []error
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", s.Window.Width, s.Window.Height))
	}
	if s.Render.FPS < 0 {
		errs = append(errs, fmt.Errorf("render.fps %d must not be negative", s.Render.FPS))
	}
	if len(s.Player.Spawn) != 3 || len(s.Player.Reset) != 3 {
		errs = append(errs, errors.New("player.spawn and player.reset need three components"))
	}
	if err := s.World.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
