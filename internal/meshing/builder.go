package meshing

const (
	// aoStep is the brightness lost per occlusion level.
	aoStep = 50
	// maxOcclusion is reached when both side neighbors of a corner are solid.
	maxOcclusion = 3
)

// Build converts a padded occupancy buffer into a face-culled mesh with
// per-vertex ambient occlusion. Vertex positions are local to the chunk, so
// the cell at padded (1,1,1) spans [0,1]^3. An all-empty buffer yields an
// empty mesh.
func Build(p *Padded) *Mesh {
	n := p.Size()
	mesh := &Mesh{}

	var vertexCount uint32
	for x := 1; x <= n; x++ {
		for y := 1; y <= n; y++ {
			for z := 1; z <= n; z++ {
				if !p.Solid(x, y, z) {
					continue
				}
				for f := range FaceCount {
					face := &Faces[f]
					nx := x + face.Check[0]
					ny := y + face.Check[1]
					nz := z + face.Check[2]
					if p.Solid(nx, ny, nz) {
						continue
					}

					var ao [4]int
					for v := range 4 {
						corner := face.Corners[v]
						mesh.Positions = append(mesh.Positions,
							corner[0]+float32(x-1),
							corner[1]+float32(y-1),
							corner[2]+float32(z-1),
						)
						mesh.TexCoords = append(mesh.TexCoords, face.UVs[v][0], face.UVs[v][1])
						mesh.Normals = append(mesh.Normals, face.Normal[0], face.Normal[1], face.Normal[2])

						offs := &aoTable[f][v]
						side1 := p.Solid(nx+offs[0][0], ny+offs[0][1], nz+offs[0][2])
						side2 := p.Solid(nx+offs[1][0], ny+offs[1][1], nz+offs[1][2])
						corn := p.Solid(nx+offs[2][0], ny+offs[2][1], nz+offs[2][2])
						ao[v] = occlusion(side1, side2, corn)

						b := brightness(ao[v])
						mesh.Colors = append(mesh.Colors, b, b, b, 255)
					}

					mesh.Indices = appendQuadIndices(mesh.Indices, vertexCount, ao)
					vertexCount += 4
				}
			}
		}
	}

	if vertexCount == 0 {
		return &Mesh{}
	}
	return mesh
}

// occlusion returns the AO level of a corner from its two side neighbors
// and its diagonal neighbor.
func occlusion(side1, side2, corner bool) int {
	if side1 && side2 {
		return maxOcclusion
	}
	level := 0
	for _, solid := range [3]bool{side1, side2, corner} {
		if solid {
			level++
		}
	}
	return level
}

func brightness(level int) uint8 {
	return uint8(255 - level*aoStep)
}

// appendQuadIndices splits the quad along the diagonal joining the less
// occluded pair of opposite corners.
func appendQuadIndices(indices []uint32, base uint32, ao [4]int) []uint32 {
	if ao[0]+ao[3] > ao[1]+ao[2] {
		return append(indices,
			base+0, base+1, base+2,
			base+2, base+1, base+3,
		)
	}
	return append(indices,
		base+0, base+1, base+3,
		base+0, base+3, base+2,
	)
}
