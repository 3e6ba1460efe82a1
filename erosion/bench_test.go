package erosion_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rollpeel/erosion"
	"github.com/katalvlaran/rollpeel/grid"
)

func benchGrid(b *testing.B, n int) *grid.Grid {
	b.Helper()
	r := rand.New(rand.NewSource(42))
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if r.Intn(4) > 0 {
				g.Place(x, y)
			}
		}
	}
	return g
}

// BenchmarkRunSinglePass measures one pass over a 500×500 grid.
// Complexity: O(W×H)
func BenchmarkRunSinglePass(b *testing.B) {
	base := benchGrid(b, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := base.Clone()
		b.StartTimer()
		if _, err := erosion.RunSinglePass(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRunToFixedPoint measures a full peel of a 500×500 grid.
// Complexity: O(P×W×H)
func BenchmarkRunToFixedPoint(b *testing.B) {
	base := benchGrid(b, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := base.Clone()
		b.StartTimer()
		if _, err := erosion.RunToFixedPoint(g); err != nil {
			b.Fatal(err)
		}
	}
}
