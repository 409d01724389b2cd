package grid_test

import (
	"testing"

	"github.com/katalvlaran/aoc/grid"
	"github.com/katalvlaran/aoc/point"
)

// BenchmarkFloodFill_Uniform fills a 200×200 uniform grid from its centre.
func BenchmarkFloodFill_Uniform(b *testing.B) {
	g, _ := grid.New(200, 200, 0)
	origin := point.New(100, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range g.FloodFill(origin, grid.FloodOptions[int]{}) {
			n++
		}
		if n != g.Len() {
			b.Fatalf("visited %d cells, want %d", n, g.Len())
		}
	}
}

// BenchmarkComponents_Checkerboard is the worst case: every cell is its own region.
func BenchmarkComponents_Checkerboard(b *testing.B) {
	g, _ := grid.New(100, 100, false)
	for p := range g.Points(grid.Down) {
		_ = g.Set(p, (p.X+p.Y)%2 == 0)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Components(grid.Conn4)
	}
}
