package meshing

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Face indices, in the order the builder visits them.
const (
	FaceTop = iota
	FaceBottom
	FaceEast
	FaceWest
	FaceNorth
	FaceSouth
	FaceCount
)

// Face describes one side of a unit cube.
type Face struct {
	// Corners are the four vertex offsets inside the unit cube, in quad order 0..3.
	Corners [4]mgl32.Vec3
	// UVs are the texture coordinates of the four corners.
	UVs [4]mgl32.Vec2
	// Normal points out of the cube.
	Normal mgl32.Vec3
	// Check is the step to the cell that must be empty for the face to show.
	Check [3]int
}

// aoOffsets holds, per face and corner, the side1, side2 and corner sample
// steps relative to the face's adjacent cell.
type aoOffsets [FaceCount][4][3][3]int

var cubeCorners = [8]mgl32.Vec3{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

var faceCornerIndices = [FaceCount][4]int{
	{3, 7, 2, 6},
	{1, 5, 0, 4},
	{1, 2, 5, 6},
	{4, 7, 0, 3},
	{5, 6, 4, 7},
	{0, 3, 1, 2},
}

var faceChecks = [FaceCount][3]int{
	{0, 1, 0},
	{0, -1, 0},
	{1, 0, 0},
	{-1, 0, 0},
	{0, 0, 1},
	{0, 0, -1},
}

var quadUVs = [4]mgl32.Vec2{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

// Faces and aoTable are computed once and never written afterwards.
var (
	Faces   = buildFaces()
	aoTable = buildAOTable(Faces)
)

func buildFaces() [FaceCount]Face {
	var faces [FaceCount]Face
	for f := range FaceCount {
		c := faceChecks[f]
		face := Face{
			UVs:    quadUVs,
			Normal: mgl32.Vec3{float32(c[0]), float32(c[1]), float32(c[2])},
			Check:  c,
		}
		for v := range 4 {
			face.Corners[v] = cubeCorners[faceCornerIndices[f][v]]
		}
		faces[f] = face
	}
	return faces
}

// buildAOTable projects each corner's diagonal direction onto the two axes
// orthogonal to the face normal.
func buildAOTable(faces [FaceCount]Face) aoOffsets {
	var table aoOffsets
	for f, face := range faces {
		for v, corner := range face.Corners {
			var dir [3]int
			for axis := range 3 {
				dir[axis] = int((corner[axis] - 0.5) * 2)
			}

			var s1, s2 [3]int
			switch {
			case face.Check[0] != 0:
				s1[1] = dir[1]
				s2[2] = dir[2]
			case face.Check[1] != 0:
				s1[0] = dir[0]
				s2[2] = dir[2]
			default:
				s1[0] = dir[0]
				s2[1] = dir[1]
			}

			table[f][v][0] = s1
			table[f][v][1] = s2
			table[f][v][2] = [3]int{s1[0] + s2[0], s1[1] + s2[1], s1[2] + s2[2]}
		}
	}
	return table
}
