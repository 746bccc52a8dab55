// SPDX-License-Identifier: MIT
package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/dijkstra"
)

// randomGraph builds a connected random graph: a Hamiltonian chain plus
// extra random edges, with weights in [1, 100].
func randomGraph(n, extra int, seed int64) *core.Graph[int, float64] {
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph[int, float64](core.WithMultiEdges(), core.WithCapacity(n))
	for i := 0; i+1 < n; i++ {
		_, _ = g.AddEdge(i, i+1, float64(1+rng.Intn(100)))
	}
	for k := 0; k < extra; k++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u != v {
			_, _ = g.AddEdge(u, v, float64(1+rng.Intn(100)))
		}
	}

	return g
}

func BenchmarkSearch_1k(b *testing.B) {
	g := randomGraph(1000, 5000, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Search(g, 0, 999)
	}
}

func BenchmarkDistances_1k(b *testing.B) {
	g := randomGraph(1000, 5000, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Distances(g, 0)
	}
}
