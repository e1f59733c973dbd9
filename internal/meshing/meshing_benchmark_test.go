package meshing

import "testing"

func makeTerrain(n int) *Padded {
	p := NewPadded(n)
	for x := 0; x < n+2; x++ {
		for z := 0; z < n+2; z++ {
			h := 4 + (x*7+z*13)%(n/2)
			for y := 0; y < h; y++ {
				p.Set(x, y, z, true)
			}
		}
	}
	return p
}

func BenchmarkBuild(b *testing.B) {
	p := makeTerrain(16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Build(p)
	}
}

func BenchmarkBuild_Checkerboard(b *testing.B) {
	p := NewPadded(16)
	for x := 1; x <= 16; x++ {
		for y := 1; y <= 16; y++ {
			for z := 1; z <= 16; z++ {
				p.Set(x, y, z, (x+y+z)%2 == 0)
			}
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Build(p)
	}
}
