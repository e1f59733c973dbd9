package physics

import (
	"testing"

	"voxel-sandbox/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

func makeWorldForPhysics() *world.World {
	w := world.New(world.NewChunkStore(), world.NewPerlinGenerator(1), zerolog.Nop())
	w.Init(2, 1, 2)
	return w
}

func BenchmarkResolve(b *testing.B) {
	w := makeWorldForPhysics()
	body := Body{Position: mgl32.Vec3{8, 24, 8}, Velocity: mgl32.Vec3{3, -12, 2}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Resolve(body, player, 1.0/150, w)
	}
}

func BenchmarkSolidCells(b *testing.B) {
	w := makeWorldForPhysics()
	area := WorldBox(player, mgl32.Vec3{8, 6, 8})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = SolidCells(area, w)
	}
}
