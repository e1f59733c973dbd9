package main

import (
	"os"
	"runtime"

	"voxel-sandbox/internal/config"
	"voxel-sandbox/internal/game"
	"voxel-sandbox/internal/logging"
	"voxel-sandbox/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := pflag.StringP("config", "c", "", "path to a JSON, YAML or TOML settings file")
	pflag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}
	log.Logger = logging.New(settings.LogLevel, os.Stderr)

	if err := run(settings); err != nil {
		log.Error().Err(err).Msg("voxel-sandbox exited with error")
		os.Exit(1)
	}
}

// newHeightSource picks the terrain generator named in the settings.
func newHeightSource(ws config.WorldSettings) world.HeightSource {
	if ws.Generator == config.GeneratorFlat {
		return world.NewFlatGenerator(ws.FlatHeight)
	}
	return world.NewPerlinGenerator(ws.Seed)
}

func run(s config.Settings) error {
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(s.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	w := world.New(world.NewChunkStore(), newHeightSource(s.World), log.Logger)
	w.Init(s.World.Width, s.World.Height, s.World.Depth)

	app, err := game.NewApp(window, w, s, log.Logger)
	if err != nil {
		return err
	}
	defer app.Close()

	app.Run()
	return nil
}
