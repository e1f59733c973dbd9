package world

import (
	"voxel-sandbox/internal/meshing"
	"voxel-sandbox/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// Renderer draws a finalized chunk mesh at its world-space origin.
// A non-zero override replaces the renderer's default shader program.
type Renderer interface {
	DrawMesh(coord ChunkCoord, revision uint64, mesh *meshing.Mesh, origin mgl32.Vec3, override uint32)
}

// World ties the chunk store to its height source and keeps every chunk's
// mesh in step with its voxels.
type World struct {
	store  *ChunkStore
	source HeightSource
	log    zerolog.Logger
}

// New creates a world over store, populated from source.
func New(store *ChunkStore, source HeightSource, logger zerolog.Logger) *World {
	return &World{
		store:  store,
		source: source,
		log:    logger.With().Str("component", "world").Logger(),
	}
}

// Store returns the underlying chunk store.
func (w *World) Store() *ChunkStore {
	return w.store
}

// Occupied reports whether the world-space point is inside a solid voxel.
func (w *World) Occupied(x, y, z float32) bool {
	return w.store.Occupied(x, y, z)
}

// Init creates and populates width*height*depth chunks starting at chunk
// (0,0,0), then builds all of their meshes. Population finishes for every
// chunk before the first mesh is built so borders see their neighbors.
func (w *World) Init(width, height, depth int) {
	defer profiling.Track("world.Init")()
	for x := range width {
		for y := range height {
			for z := range depth {
				c := NewChunk(ChunkCoord{X: x, Y: y, Z: z})
				PopulateChunk(c, w.source)
				w.store.AddChunk(c)
			}
		}
	}
	built := w.RebuildDirty()

	quads := 0
	for _, coord := range w.store.Coords() {
		quads += w.store.Chunk(coord).Mesh().QuadCount()
	}
	w.log.Info().
		Int("chunks", w.store.Len()).
		Int("meshes", built).
		Int("quads", quads).
		Msg("world initialized")
}

// RebuildChunk rebuilds the mesh of one chunk. A coordinate with no chunk
// is ignored and reports false.
func (w *World) RebuildChunk(coord ChunkCoord) bool {
	defer profiling.Track("world.RebuildChunk")()
	c := w.store.Chunk(coord)
	if c == nil {
		return false
	}
	padded, _ := w.store.Neighborhood(coord)
	mesh := meshing.Build(padded)
	c.swapMesh(mesh)

	if e := w.log.Debug(); e.Enabled() {
		e.Interface("coord", coord).
			Int("quads", mesh.QuadCount()).
			Uint64("digest", mesh.Digest()).
			Msg("chunk mesh rebuilt")
	}
	return true
}

// RebuildDirty rebuilds every dirty chunk and returns how many were built.
func (w *World) RebuildDirty() int {
	built := 0
	for _, coord := range w.store.Coords() {
		c := w.store.Chunk(coord)
		if c == nil || !c.IsDirty() {
			continue
		}
		if w.RebuildChunk(coord) {
			built++
		}
	}
	return built
}

// Draw hands every non-empty chunk mesh to r in coordinate order.
func (w *World) Draw(r Renderer, override uint32) {
	defer profiling.Track("world.Draw")()
	for _, coord := range w.store.Coords() {
		c := w.store.Chunk(coord)
		if c == nil {
			continue
		}
		m := c.Mesh()
		if m.Empty() {
			continue
		}
		r.DrawMesh(coord, c.Revision(), m, c.Origin(), override)
	}
}
