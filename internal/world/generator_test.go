package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorsImplementHeightSource(t *testing.T) {
	var _ HeightSource = NewPerlinGenerator(123)
	var _ HeightSource = NewFlatGenerator(10)
}

func TestFlatGeneratorHeight(t *testing.T) {
	g := NewFlatGenerator(10)
	assert.Equal(t, 10, g.HeightAt(0, 0))
	assert.Equal(t, 10, g.HeightAt(100, -50))
}

func TestPopulateChunkFlat(t *testing.T) {
	c := NewChunk(ChunkCoord{})
	PopulateChunk(c, NewFlatGenerator(5))

	for y := range ChunkSize {
		assert.Equal(t, y < 5, c.Solid(3, y, 7), "y=%d", y)
	}
	assert.Equal(t, 5*ChunkSize*ChunkSize, c.SolidCount())
	assert.True(t, c.IsDirty())
}

func TestPopulateChunkAboveSurface(t *testing.T) {
	c := NewChunk(ChunkCoord{Y: 1})
	PopulateChunk(c, NewFlatGenerator(20))
	// world y 16..19 are solid, 20 and up are air
	assert.True(t, c.Solid(0, 3, 0))
	assert.False(t, c.Solid(0, 4, 0))
	assert.Equal(t, 4*ChunkSize*ChunkSize, c.SolidCount())
}

func TestPerlinGeneratorDeterministic(t *testing.T) {
	a := NewPerlinGenerator(1337)
	b := NewPerlinGenerator(1337)
	for x := -20; x < 20; x += 3 {
		for z := -20; z < 20; z += 5 {
			require.Equal(t, a.HeightAt(x, z), b.HeightAt(x, z))
		}
	}
}

func TestPerlinGeneratorRange(t *testing.T) {
	g := NewPerlinGenerator(42)
	for x := range 64 {
		for z := range 64 {
			h := g.HeightAt(x, z)
			require.GreaterOrEqual(t, h, -12)
			require.LessOrEqual(t, h, 28)
		}
	}
}

func TestPerlinChunksMatchHeights(t *testing.T) {
	g := NewPerlinGenerator(7)
	c := NewChunk(ChunkCoord{X: 1})
	PopulateChunk(c, g)
	for lx := 0; lx < ChunkSize; lx += 5 {
		for lz := 0; lz < ChunkSize; lz += 5 {
			h := g.HeightAt(ChunkToWorld(1, lx), lz)
			for ly := range ChunkSize {
				require.Equal(t, ly < h, c.Solid(lx, ly, lz))
			}
		}
	}
}
