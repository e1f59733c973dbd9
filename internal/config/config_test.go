package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, 1500, s.Window.Width)
	assert.Equal(t, 900, s.Window.Height)
	assert.True(t, s.Window.Maximize)
	assert.Equal(t, 150, s.Render.FPS)
	assert.Equal(t, float32(60), s.Render.FOV)
	assert.Equal(t, "resources/my_texture.png", s.Render.Texture)
	assert.Equal(t, WorldSettings{Width: 16, Height: 1, Depth: 16, Generator: GeneratorPerlin, FlatHeight: 8}, s.World)
	assert.Equal(t, float32(5), s.Player.MoveSpeed)
	assert.Equal(t, float32(15), s.Player.Responsiveness)
	assert.Equal(t, float32(8), s.Player.JumpForce)
	assert.Equal(t, float32(-25), s.Player.Gravity)
	assert.Equal(t, float32(0.002), s.Player.MouseSensitivity)
	assert.Equal(t, mgl32.Vec3{1, 24, 1}, s.Player.SpawnPoint())
	assert.Equal(t, mgl32.Vec3{1, 32, 1}, s.Player.ResetPoint())
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"render": { "fps": 60 },
		"world": { "width": 4, "generator": "flat", "flatHeight": 3 },
		"player": { "spawn": [2, 40, 2] }
	}`
	path := filepath.Join(dir, "voxel.json")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, 60, s.Render.FPS)
	assert.Equal(t, 4, s.World.Width)
	assert.Equal(t, 16, s.World.Depth, "unset keys keep defaults")
	assert.Equal(t, GeneratorFlat, s.World.Generator)
	assert.Equal(t, 3, s.World.FlatHeight)
	assert.Equal(t, mgl32.Vec3{2, 40, 2}, s.Player.SpawnPoint())
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "voxel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world:\n  seed: 99\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(99), s.World.Seed)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("VOXEL_RENDER_FPS", "30")
	t.Setenv("VOXEL_LOGLEVEL", "warn")

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30, s.Render.FPS)
	assert.Equal(t, "warn", s.LogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/voxel.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_InvalidWorld(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "voxel.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"world": {"generator": "caves", "depth": 0}}`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "world size")
}

func TestWorldSettingsValidate(t *testing.T) {
	ok := WorldSettings{Width: 1, Height: 1, Depth: 1, Generator: GeneratorFlat}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.Generator = "caves"
	assert.ErrorContains(t, bad.Validate(), `unknown world generator "caves"`)
}
