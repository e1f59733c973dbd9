package physics

import (
	"testing"

	"voxel-sandbox/internal/world"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cellSet is an in-memory Occupancy keyed by integer cell.
type cellSet map[[3]int]bool

func (s cellSet) Occupied(x, y, z float32) bool {
	return s[[3]int{int(math32.Floor(x)), int(math32.Floor(y)), int(math32.Floor(z))}]
}

func (s cellSet) fill(x0, y0, z0, x1, y1, z1 int) cellSet {
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			for z := z0; z <= z1; z++ {
				s[[3]int{x, y, z}] = true
			}
		}
	}
	return s
}

var player = BodyBox(0.6, 1.8)

func TestResolveLandsOnFloor(t *testing.T) {
	floor := cellSet{}.fill(-2, -1, -2, 2, -1, 2)
	body := Body{Position: mgl32.Vec3{0.2, 0.5, 0.2}, Velocity: mgl32.Vec3{0, -10, 0}}

	got := Resolve(body, player, 1.0, floor)
	assert.Equal(t, float32(0), got.Position.Y())
	assert.Equal(t, float32(0), got.Velocity.Y())
	assert.True(t, got.Grounded)
	assert.Equal(t, body.Position.X(), got.Position.X())
	assert.Equal(t, body.Position.Z(), got.Position.Z())
}

func TestResolveDeepFloorUsesNearestFace(t *testing.T) {
	floor := cellSet{}.fill(0, -5, 0, 0, -1, 0)
	body := Body{Position: mgl32.Vec3{0.2, 0.5, 0.2}, Velocity: mgl32.Vec3{0, -10, 0}}

	got := Resolve(body, player, 1.0, floor)
	assert.Equal(t, float32(0), got.Position.Y())
	assert.True(t, got.Grounded)
}

func TestResolveStopsAtWall(t *testing.T) {
	wall := cellSet{}.fill(3, 0, -1, 3, 2, 1)
	body := Body{Position: mgl32.Vec3{1, 0, 0.2}, Velocity: mgl32.Vec3{10, 0, 4}}

	got := Resolve(body, player, 0.5, wall)
	assert.InDelta(t, 2.4, got.Position.X(), 1e-5)
	assert.Equal(t, float32(0), got.Velocity.X())
	assert.InDelta(t, 2.2, got.Position.Z(), 1e-5)
	assert.Equal(t, float32(4), got.Velocity.Z(), "unclamped axis keeps its velocity")
	assert.False(t, got.Grounded)
}

func TestResolveHitsCeiling(t *testing.T) {
	ceiling := cellSet{}.fill(-1, 3, -1, 1, 3, 1)
	body := Body{Position: mgl32.Vec3{0.2, 0, 0.2}, Velocity: mgl32.Vec3{0, 10, 0}}

	got := Resolve(body, player, 1.0, ceiling)
	assert.InDelta(t, 1.2, got.Position.Y(), 1e-5)
	assert.Equal(t, float32(0), got.Velocity.Y())
	assert.False(t, got.Grounded, "rising into a ceiling is not grounded")
}

func TestResolveNeverOvershoots(t *testing.T) {
	// dyadic sizes keep every sum exact in float32
	box := cube.Box(0, 0, 0, 0.5, 1.75, 0.5)
	cells := cellSet{}.
		fill(-3, -1, -3, 3, -1, 3).
		fill(2, 0, -3, 2, 3, 3).
		fill(-3, 0, 2, 3, 3, 2).
		fill(-3, 4, -3, 3, 4, 3)
	velocities := []mgl32.Vec3{
		{7, -9, 3},
		{5, 0, 5},
		{13, -2, -1},
		{-1, -30, 11},
		{0, 12, 0},
		{-6, 6, -6},
	}
	for _, v := range velocities {
		body := Body{Position: mgl32.Vec3{0.25, 0.5, 0.25}, Velocity: v}
		current := WorldBox(box, body.Position)
		candidates := SolidCells(Union(current, WorldBox(box, body.Position.Add(v.Mul(0.5)))), cells)

		got := Resolve(body, box, 0.5, cells)
		moved := WorldBox(box, got.Position)
		for _, axis := range axisOrder {
			a1, a2 := (axis+1)%3, (axis+2)%3
			for _, c := range candidates {
				if !overlapsOn(current, c, a1) || !overlapsOn(current, c, a2) {
					continue
				}
				require.False(t, overlapsOn(moved, c, axis), "velocity %v crosses into %v on axis %d", v, c, axis)
			}
		}
	}
}

func TestResolveIdempotentWithoutMotion(t *testing.T) {
	floor := cellSet{}.fill(-1, -1, -1, 1, -1, 1)
	body := Body{Position: mgl32.Vec3{0.2, 0, 0.2}}
	for range 5 {
		body = Resolve(body, player, 1.0/60, floor)
		assert.Equal(t, mgl32.Vec3{0.2, 0, 0.2}, body.Position)
		assert.False(t, body.Grounded)
	}
}

func TestResolveRestingStaysGrounded(t *testing.T) {
	floor := cellSet{}.fill(-1, -1, -1, 1, -1, 1)
	body := Body{Position: mgl32.Vec3{0.2, 0, 0.2}}
	for range 5 {
		body.Velocity[1] += -25 * (1.0 / 60)
		body = Resolve(body, player, 1.0/60, floor)
		assert.Equal(t, float32(0), body.Position.Y())
		assert.Equal(t, float32(0), body.Velocity.Y())
		assert.True(t, body.Grounded)
	}
}

func TestResolveFreeFallWithoutChunks(t *testing.T) {
	store := world.NewChunkStore()
	body := Body{Position: mgl32.Vec3{0.2, 0.5, 0.2}, Velocity: mgl32.Vec3{0, -10, 0}}

	got := Resolve(body, player, 1.0, store)
	assert.InDelta(t, -9.5, got.Position.Y(), 1e-5)
	assert.Equal(t, float32(-10), got.Velocity.Y())
	assert.False(t, got.Grounded)
}

func TestResolveAgainstChunkStore(t *testing.T) {
	store := world.NewChunkStore()
	for x := -2; x <= 2; x++ {
		for z := -2; z <= 2; z++ {
			store.SetVoxel(x, -1, z, true)
		}
	}
	body := Body{Position: mgl32.Vec3{-0.3, 2, -0.3}, Velocity: mgl32.Vec3{0, -8, 0}}

	got := Resolve(body, player, 0.5, store)
	assert.Equal(t, float32(0), got.Position.Y())
	assert.True(t, got.Grounded)
}

func TestSolidCellsBroadPhase(t *testing.T) {
	cells := cellSet{}.fill(0, 0, 0, 0, 0, 0).fill(0, 2, 0, 0, 2, 0).fill(-1, 0, 0, -1, 0, 0)
	got := SolidCells(WorldBox(player, mgl32.Vec3{0, 0, 0.2}), cells)
	assert.ElementsMatch(t, []cube.BBox{CellBox(-1, 0, 0), CellBox(0, 0, 0)}, got)

	got = SolidCells(WorldBox(player, mgl32.Vec3{0.2, 0, 0.2}), cells)
	assert.Equal(t, []cube.BBox{CellBox(0, 0, 0)}, got)
}

func TestGroundLevel(t *testing.T) {
	cells := cellSet{}.fill(4, 0, 4, 4, 6, 4).fill(4, 10, 4, 4, 10, 4)

	y, ok := GroundLevel(4.7, 4.1, 8, -10, cells)
	require.True(t, ok)
	assert.Equal(t, float32(7), y)

	y, ok = GroundLevel(4.7, 4.1, 20, -10, cells)
	require.True(t, ok)
	assert.Equal(t, float32(11), y)

	_, ok = GroundLevel(0, 0, 20, -10, cells)
	assert.False(t, ok)
}

func TestUnion(t *testing.T) {
	a := CellBox(0, 0, 0)
	b := CellBox(2, -3, 1)
	u := Union(a, b)
	assert.Equal(t, mgl32.Vec3{0, -3, 0}, u.Min())
	assert.Equal(t, mgl32.Vec3{3, 1, 2}, u.Max())
	assert.False(t, Overlaps(a, CellBox(1, 0, 0)), "shared face is not an overlap")
	assert.True(t, Overlaps(a, WorldBox(player, mgl32.Vec3{0.5, 0.5, 0.5})))
}
