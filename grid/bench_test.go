package grid_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/katalvlaran/rollpeel/grid"
)

// randomSource renders an n×n map where roughly half the tiles hold a roll.
func randomSource(n int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	var buf bytes.Buffer
	buf.Grow((n + 1) * n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if r.Intn(2) == 0 {
				buf.WriteByte('@')
			} else {
				buf.WriteByte('.')
			}
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// BenchmarkParse measures Parse on a 1000×1000 map.
// Complexity: O(W×H)
func BenchmarkParse(b *testing.B) {
	src := randomSource(1000, 42)
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grid.Parse(src); err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
	}
}

// BenchmarkClusters measures Clusters on a 1000×1000 map.
// Complexity: O(W×H×8)
func BenchmarkClusters(b *testing.B) {
	g, err := grid.Parse(randomSource(1000, 42))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clusters()
	}
}
