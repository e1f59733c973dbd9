package world

import (
	"cmp"
	"sync/atomic"

	"voxel-sandbox/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// ChunkSize is the edge length of every chunk in voxels.
	ChunkSize   = 16
	ChunkVolume = ChunkSize * ChunkSize * ChunkSize
)

// ChunkCoord addresses a chunk in chunk space.
type ChunkCoord struct {
	X, Y, Z int
}

// Compare orders coordinates by X, then Y, then Z.
func (c ChunkCoord) Compare(o ChunkCoord) int {
	if r := cmp.Compare(c.X, o.X); r != 0 {
		return r
	}
	if r := cmp.Compare(c.Y, o.Y); r != 0 {
		return r
	}
	return cmp.Compare(c.Z, o.Z)
}

// Origin returns the world-space position of the chunk's minimum corner.
func (c ChunkCoord) Origin() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(c.X * ChunkSize),
		float32(c.Y * ChunkSize),
		float32(c.Z * ChunkSize),
	}
}

// Chunk is one cubic region of binary voxel occupancy together with its
// current mesh.
type Chunk struct {
	Coord  ChunkCoord
	voxels [ChunkVolume]uint8
	dirty  bool

	mesh     atomic.Pointer[meshing.Mesh]
	revision atomic.Uint64
}

// NewChunk creates an empty chunk that still needs a mesh.
func NewChunk(coord ChunkCoord) *Chunk {
	return &Chunk{
		Coord: coord,
		dirty: true,
	}
}

func index(x, y, z int) (int, bool) {
	if x < 0 || x >= ChunkSize || y < 0 || y >= ChunkSize || z < 0 || z >= ChunkSize {
		return 0, false
	}
	return (x*ChunkSize+y)*ChunkSize + z, true
}

// Solid reports whether the local cell is occupied. Local indices outside
// the chunk read as empty.
func (c *Chunk) Solid(x, y, z int) bool {
	i, ok := index(x, y, z)
	if !ok {
		return false
	}
	return c.voxels[i] != 0
}

// SetSolid stores the occupancy of a local cell and marks the chunk dirty
// when it changes.
func (c *Chunk) SetSolid(x, y, z int, solid bool) {
	i, ok := index(x, y, z)
	if !ok {
		return
	}
	var v uint8
	if solid {
		v = 1
	}
	if c.voxels[i] != v {
		c.voxels[i] = v
		c.dirty = true
	}
}

// SolidCount returns the number of occupied cells.
func (c *Chunk) SolidCount() int {
	n := 0
	for _, v := range c.voxels {
		if v != 0 {
			n++
		}
	}
	return n
}

// Origin returns the chunk's world-space minimum corner.
func (c *Chunk) Origin() mgl32.Vec3 {
	return c.Coord.Origin()
}

// IsDirty returns whether the mesh is out of date.
func (c *Chunk) IsDirty() bool {
	return c.dirty
}

// MarkDirty requests a mesh rebuild.
func (c *Chunk) MarkDirty() {
	c.dirty = true
}

// Mesh returns the last published mesh, or nil before the first build.
func (c *Chunk) Mesh() *meshing.Mesh {
	return c.mesh.Load()
}

// Revision increases every time a new mesh is published.
func (c *Chunk) Revision() uint64 {
	return c.revision.Load()
}

// swapMesh publishes a freshly built mesh in place of the old one.
func (c *Chunk) swapMesh(m *meshing.Mesh) {
	c.mesh.Store(m)
	c.revision.Add(1)
	c.dirty = false
}
