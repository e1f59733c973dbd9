package world

import (
	"github.com/aquilax/go-perlin"
)

// HeightSource supplies the terrain surface height of a world column.
type HeightSource interface {
	HeightAt(worldX, worldZ int) int
}

// PerlinGenerator is a rolling-hills height field.
type PerlinGenerator struct {
	noise      *perlin.Perlin
	scale      float64
	baseHeight float64
	amplitude  float64
}

// NewPerlinGenerator creates a generator for the given seed.
func NewPerlinGenerator(seed int64) *PerlinGenerator {
	return &PerlinGenerator{
		noise:      perlin.NewPerlin(2, 2, 3, seed),
		scale:      0.03,
		baseHeight: 8,
		amplitude:  10,
	}
}

// HeightAt returns the number of solid cells in the column, counted from y = 0.
func (g *PerlinGenerator) HeightAt(worldX, worldZ int) int {
	n := g.noise.Noise2D(float64(worldX)*g.scale, float64(worldZ)*g.scale)
	return int(g.baseHeight + n*g.amplitude)
}

// FlatGenerator produces a constant surface height.
type FlatGenerator struct {
	Height int
}

// NewFlatGenerator creates a flat world of the given height.
func NewFlatGenerator(height int) *FlatGenerator {
	return &FlatGenerator{Height: height}
}

// HeightAt returns the fixed height.
func (g *FlatGenerator) HeightAt(_, _ int) int {
	return g.Height
}

// PopulateChunk fills a chunk from a height source: a cell is solid when
// its world Y lies below the column height.
func PopulateChunk(c *Chunk, src HeightSource) {
	origin := c.Coord
	for lx := range ChunkSize {
		for lz := range ChunkSize {
			worldX := ChunkToWorld(origin.X, lx)
			worldZ := ChunkToWorld(origin.Z, lz)
			height := src.HeightAt(worldX, worldZ)
			for ly := range ChunkSize {
				worldY := ChunkToWorld(origin.Y, ly)
				c.SetSolid(lx, ly, lz, worldY < height)
			}
		}
	}
	c.MarkDirty()
}
