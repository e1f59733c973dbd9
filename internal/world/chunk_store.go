package world

import (
	"slices"
	"sync"

	"voxel-sandbox/internal/meshing"

	"github.com/elliotchance/orderedmap/v2"
)

// ChunkStore owns every chunk of the world and answers occupancy queries
// across chunk boundaries.
type ChunkStore struct {
	mu     sync.RWMutex
	chunks *orderedmap.OrderedMap[ChunkCoord, *Chunk]
}

// NewChunkStore creates an empty chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		chunks: orderedmap.NewOrderedMap[ChunkCoord, *Chunk](),
	}
}

// AddChunk inserts a chunk under its own coordinate. An existing chunk at
// that coordinate is kept.
func (cs *ChunkStore) AddChunk(c *Chunk) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if _, ok := cs.chunks.Get(c.Coord); ok {
		return false
	}
	cs.chunks.Set(c.Coord, c)
	return true
}

// Chunk returns the chunk at coord, or nil.
func (cs *ChunkStore) Chunk(coord ChunkCoord) *Chunk {
	cs.mu.RLock()
	c, _ := cs.chunks.Get(coord)
	cs.mu.RUnlock()
	return c
}

// HasChunk checks if a chunk exists.
func (cs *ChunkStore) HasChunk(coord ChunkCoord) bool {
	return cs.Chunk(coord) != nil
}

// Len returns the number of stored chunks.
func (cs *ChunkStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.chunks.Len()
}

// Coords returns every stored coordinate in ascending order.
func (cs *ChunkStore) Coords() []ChunkCoord {
	cs.mu.RLock()
	keys := cs.chunks.Keys()
	cs.mu.RUnlock()
	slices.SortFunc(keys, ChunkCoord.Compare)
	return keys
}

// Occupied reports whether the world-space point lies inside a solid voxel.
// Points in missing chunks are empty space.
func (cs *ChunkStore) Occupied(wx, wy, wz float32) bool {
	coord, local := WorldToChunk(wx, wy, wz)
	c := cs.Chunk(coord)
	if c == nil {
		return false
	}
	return c.Solid(local[0], local[1], local[2])
}

// IsSolid reports whether the integer world cell is solid.
func (cs *ChunkStore) IsSolid(x, y, z int) bool {
	return cs.Occupied(float32(x)+0.5, float32(y)+0.5, float32(z)+0.5)
}

// SetVoxel sets a cell by world coordinates, creating its chunk on demand.
// Neighbors sharing the touched border are marked dirty.
func (cs *ChunkStore) SetVoxel(x, y, z int, solid bool) {
	cx, lx := ChunkOf(x)
	cy, ly := ChunkOf(y)
	cz, lz := ChunkOf(z)
	coord := ChunkCoord{X: cx, Y: cy, Z: cz}

	c := cs.Chunk(coord)
	if c == nil {
		if !solid {
			return
		}
		c = NewChunk(coord)
		cs.AddChunk(c)
	}
	c.SetSolid(lx, ly, lz, solid)

	cs.markBorder(coord, lx, 0)
	cs.markBorder(coord, ly, 1)
	cs.markBorder(coord, lz, 2)
}

// markBorder dirties the neighbor across axis when local sits on that
// axis' first or last cell.
func (cs *ChunkStore) markBorder(coord ChunkCoord, local, axis int) {
	var step int
	switch local {
	case 0:
		step = -1
	case ChunkSize - 1:
		step = 1
	default:
		return
	}
	nb := coord
	switch axis {
	case 0:
		nb.X += step
	case 1:
		nb.Y += step
	default:
		nb.Z += step
	}
	if c := cs.Chunk(nb); c != nil {
		c.MarkDirty()
	}
}

// Neighborhood samples the padded occupancy buffer of one chunk: its own
// cells plus a one-cell border read from the neighbors through Occupied.
func (cs *ChunkStore) Neighborhood(coord ChunkCoord) (*meshing.Padded, bool) {
	if !cs.HasChunk(coord) {
		return nil, false
	}
	p := meshing.NewPadded(ChunkSize)
	cs.fillNeighborhood(coord, p)
	return p, true
}

func (cs *ChunkStore) fillNeighborhood(coord ChunkCoord, p *meshing.Padded) {
	base := coord.Origin()
	for x := -1; x <= ChunkSize; x++ {
		for y := -1; y <= ChunkSize; y++ {
			for z := -1; z <= ChunkSize; z++ {
				if cs.Occupied(
					base[0]+float32(x)+0.5,
					base[1]+float32(y)+0.5,
					base[2]+float32(z)+0.5,
				) {
					p.Set(x+1, y+1, z+1, true)
				}
			}
		}
	}
}
