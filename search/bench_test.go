package search_test

import (
	"testing"

	"github.com/katalvlaran/gridbench/gridgraph"
	"github.com/katalvlaran/gridbench/search"
)

func benchGrid(b *testing.B) *gridgraph.Grid {
	g, err := gridgraph.Generate(20, 20, gridgraph.Coord{}, gridgraph.Coord{Row: 19, Col: 19}, 0.3,
		gridgraph.WithSeed(42))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	return g
}

// BenchmarkRun measures each strategy on the same reference 20×20 map.
func BenchmarkRun(b *testing.B) {
	g := benchGrid(b)
	goal := gridgraph.Coord{Row: 19, Col: 19}
	for _, alg := range search.Algorithms {
		b.Run(alg.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = search.Run(alg, g, gridgraph.Coord{}, goal)
			}
		})
	}
}
