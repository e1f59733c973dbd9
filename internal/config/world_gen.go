package config

import "fmt"

const (
	GeneratorPerlin = "perlin"
	GeneratorFlat   = "flat"
)

// WorldSettings sizes the world in chunks and selects its terrain.
type WorldSettings struct {
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Depth      int    `mapstructure:"depth"`
	Generator  string `mapstructure:"generator"`
	Seed       int64  `mapstructure:"seed"`
	FlatHeight int    `mapstructure:"flatHeight"`
}

// Validate checks the chunk grid and generator name.
func (w WorldSettings) Validate() error {
	if w.Width <= 0 || w.Height <= 0 || w.Depth <= 0 {
		return fmt.Errorf("world size %dx%dx%d must be positive", w.Width, w.Height, w.Depth)
	}
	switch w.Generator {
	case GeneratorPerlin, GeneratorFlat:
		return nil
	default:
		return fmt.Errorf("unknown world generator %q", w.Generator)
	}
}
