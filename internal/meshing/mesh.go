package meshing

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
)

// Mesh is the renderable output for one chunk. All attribute slices are
// parallel: vertex i owns Positions[3i:3i+3], Normals[3i:3i+3],
// TexCoords[2i:2i+2] and Colors[4i:4i+4].
type Mesh struct {
	Positions []float32
	Normals   []float32
	TexCoords []float32
	Colors    []uint8
	Indices   []uint32
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	if m == nil {
		return 0
	}
	return len(m.Positions) / 3
}

// TriangleCount returns the number of indexed triangles.
func (m *Mesh) TriangleCount() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / 3
}

// QuadCount returns the number of emitted faces.
func (m *Mesh) QuadCount() int {
	return m.VertexCount() / 4
}

// Empty reports whether the mesh has nothing to draw.
func (m *Mesh) Empty() bool {
	return m.VertexCount() == 0
}

// Digest hashes every attribute and index in order. Two meshes built from
// the same input always share a digest.
func (m *Mesh) Digest() uint64 {
	if m.Empty() {
		return xxh3.Hash(nil)
	}
	buf := make([]byte, 0, 4*(len(m.Positions)+len(m.Normals)+len(m.TexCoords)+len(m.Indices))+len(m.Colors))
	for _, attr := range [][]float32{m.Positions, m.Normals, m.TexCoords} {
		for _, f := range attr {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
		}
	}
	buf = append(buf, m.Colors...)
	for _, i := range m.Indices {
		buf = binary.LittleEndian.AppendUint32(buf, i)
	}
	return xxh3.Hash(buf)
}
