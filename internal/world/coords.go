package world

import "github.com/chewxy/math32"

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Mod returns the non-negative remainder of a / b for positive b.
func Mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// ChunkOf splits an integer world coordinate into its chunk coordinate and
// local index on one axis. -1 maps to chunk -1, local 15.
func ChunkOf(w int) (chunk, local int) {
	return FloorDiv(w, ChunkSize), Mod(w, ChunkSize)
}

// WorldToChunk maps a world-space point to the chunk containing it and the
// local cell index inside that chunk.
func WorldToChunk(x, y, z float32) (ChunkCoord, [3]int) {
	coord := ChunkCoord{
		X: int(math32.Floor(x / ChunkSize)),
		Y: int(math32.Floor(y / ChunkSize)),
		Z: int(math32.Floor(z / ChunkSize)),
	}
	local := [3]int{
		int(math32.Floor(x)) - coord.X*ChunkSize,
		int(math32.Floor(y)) - coord.Y*ChunkSize,
		int(math32.Floor(z)) - coord.Z*ChunkSize,
	}
	return coord, local
}

// ChunkToWorld is the inverse of ChunkOf.
func ChunkToWorld(chunk, local int) int {
	return chunk*ChunkSize + local
}
