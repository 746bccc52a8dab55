// SPDX-License-Identifier: MIT
// Package dijkstra_test validates the search engine, the path extractor and
// the query facade.
package dijkstra_test

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/dijkstra"
)

type weightedEdge struct {
	From, To string
	W        float64
}

// buildGraph constructs a directed float64 graph with the given nodes and edges.
func buildGraph(t testing.TB, nodes []string, edges []weightedEdge) *core.Graph[string, float64] {
	t.Helper()
	g := core.NewGraph[string, float64]()
	for _, n := range nodes {
		g.AddNode(n)
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.From, e.To, e.W)
		require.NoError(t, err)
	}

	return g
}

// scenarioA is the ten-node fixture with a unique cheapest D → I route.
func scenarioA(t testing.TB) *core.Graph[string, float64] {
	return buildGraph(t,
		[]string{"A", "B", "D", "E", "F", "G", "H", "I", "L", "M"},
		[]weightedEdge{
			{"A", "B", 1}, {"A", "H", 8}, {"A", "M", 5},
			{"B", "M", 3},
			{"D", "A", 7}, {"D", "G", 2},
			{"F", "G", 9},
			{"G", "L", 7},
			{"H", "B", 6}, {"H", "I", 2},
			{"I", "D", 1}, {"I", "L", 5},
			{"M", "E", 3}, {"M", "F", 4},
		})
}

// scenarioB is the six-node fixture with a unique cheapest a → f route.
func scenarioB(t testing.TB) *core.Graph[string, float64] {
	return buildGraph(t,
		[]string{"a", "b", "c", "d", "e", "f"},
		[]weightedEdge{
			{"a", "b", 3}, {"a", "d", 7},
			{"b", "e", 1}, {"b", "d", 2},
			{"c", "f", 1},
			{"d", "f", 2},
			{"e", "f", 4}, {"e", "c", 1},
		})
}

// pathCost sums the cheapest edge weight between consecutive path nodes and
// fails the test if two consecutive nodes are not connected.
func pathCost(t testing.TB, g *core.Graph[string, float64], path []string) float64 {
	t.Helper()
	var total float64
	for i := 0; i+1 < len(path); i++ {
		out, err := g.OutgoingEdges(path[i])
		require.NoError(t, err)
		best := math.Inf(1)
		for _, e := range out {
			if e.To == path[i+1] && e.Weight < best {
				best = e.Weight
			}
		}
		require.False(t, math.IsInf(best, 1), "no edge %s→%s", path[i], path[i+1])
		total += best
	}

	return total
}

// ------------------------------------------------------------------------
// 1. Reference scenarios
// ------------------------------------------------------------------------

func TestScenarioA(t *testing.T) {
	g := scenarioA(t)

	cost, err := dijkstra.ShortestPathCost(g, "D", "I")
	require.NoError(t, err)
	assert.Equal(t, 17.0, cost)

	path, err := dijkstra.ShortestPathData(g, "D", "I")
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "A", "H", "I"}, path)
}

func TestScenarioB(t *testing.T) {
	g := scenarioB(t)

	path, err := dijkstra.ShortestPathData(g, "a", "f")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "e", "c", "f"}, path)

	cost, err := dijkstra.ShortestPathCost(g, "a", "f")
	require.NoError(t, err)
	assert.Equal(t, 6.0, cost)
}

// ------------------------------------------------------------------------
// 2. Properties
// ------------------------------------------------------------------------

func TestSameStartAndEnd(t *testing.T) {
	g := scenarioA(t)
	for _, n := range g.Nodes() {
		cost, err := dijkstra.ShortestPathCost(g, n, n)
		require.NoError(t, err)
		assert.Zero(t, cost, n)

		path, err := dijkstra.ShortestPathData(g, n, n)
		require.NoError(t, err)
		assert.Equal(t, []string{n}, path)
	}
}

func TestCostMatchesPathWeights(t *testing.T) {
	for name, g := range map[string]*core.Graph[string, float64]{"A": scenarioA(t), "B": scenarioB(t)} {
		nodes := g.Nodes()
		for _, s := range nodes {
			for _, e := range nodes {
				res, err := dijkstra.Search(g, s, e)
				if errors.Is(err, dijkstra.ErrPathNotFound) {
					continue
				}
				require.NoError(t, err)

				path := dijkstra.Reconstruct(res)
				require.Equal(t, s, path[0])
				require.Equal(t, e, path[len(path)-1])
				assert.InDelta(t, res.Cost(), pathCost(t, g, path), 1e-9, "%s: %s→%s", name, s, e)

				// Shortest paths over non-negative weights are loop-free.
				seen := make(map[string]bool, len(path))
				for _, n := range path {
					require.False(t, seen[n], "%s: node %s repeated in %v", name, n, path)
					seen[n] = true
				}
			}
		}
	}
}

func TestTriangleInequality(t *testing.T) {
	g := scenarioA(t)
	nodes := g.Nodes()
	costOf := func(s, e string) (float64, bool) {
		c, err := dijkstra.ShortestPathCost(g, s, e)
		if errors.Is(err, dijkstra.ErrPathNotFound) {
			return 0, false
		}
		require.NoError(t, err)
		return c, true
	}

	for _, s := range nodes {
		for _, e := range nodes {
			se, ok := costOf(s, e)
			if !ok {
				continue
			}
			for _, m := range nodes {
				sm, ok1 := costOf(s, m)
				me, ok2 := costOf(m, e)
				if ok1 && ok2 {
					assert.LessOrEqual(t, se, sm+me, "%s→%s via %s", s, e, m)
				}
			}
		}
	}
}

// TestRandomGraphsAgainstFloydWarshall cross-checks costs on random sparse
// graphs against an all-pairs reference computed in the test.
func TestRandomGraphsAgainstFloydWarshall(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n = 25
	for round := 0; round < 20; round++ {
		g := core.NewGraph[int, int](core.WithMultiEdges())
		dist := make([][]float64, n)
		for i := range dist {
			g.AddNode(i)
			dist[i] = make([]float64, n)
			for j := range dist[i] {
				dist[i][j] = math.Inf(1)
			}
			dist[i][i] = 0
		}
		for k := 0; k < 3*n; k++ {
			u, v, w := rng.Intn(n), rng.Intn(n), rng.Intn(20)
			if u == v {
				continue
			}
			_, err := g.AddEdge(u, v, w)
			require.NoError(t, err)
			dist[u][v] = math.Min(dist[u][v], float64(w))
		}
		for k := 0; k < n; k++ {
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					if dist[i][k]+dist[k][j] < dist[i][j] {
						dist[i][j] = dist[i][k] + dist[k][j]
					}
				}
			}
		}

		for s := 0; s < n; s++ {
			for e := 0; e < n; e++ {
				cost, err := dijkstra.ShortestPathCost(g, s, e)
				if math.IsInf(dist[s][e], 1) {
					require.ErrorIs(t, err, dijkstra.ErrPathNotFound, "round %d: %d→%d", round, s, e)
					continue
				}
				require.NoError(t, err)
				require.Equal(t, dist[s][e], cost, "round %d: %d→%d", round, s, e)
			}
		}
	}
}

// ------------------------------------------------------------------------
// 3. Failure modes
// ------------------------------------------------------------------------

func TestNodeNotFound(t *testing.T) {
	g := scenarioB(t)

	_, err := dijkstra.ShortestPathCost(g, "zz", "a")
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
	assert.Contains(t, err.Error(), "start zz")

	_, err = dijkstra.ShortestPathData(g, "a", "zz")
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
	assert.Contains(t, err.Error(), "end zz")
	assert.NotErrorIs(t, err, dijkstra.ErrPathNotFound)
}

func TestPathNotFound(t *testing.T) {
	g := scenarioB(t)

	// f has no outgoing edges.
	_, err := dijkstra.ShortestPathCost(g, "f", "a")
	require.ErrorIs(t, err, dijkstra.ErrPathNotFound)
	assert.NotErrorIs(t, err, dijkstra.ErrNodeNotFound)

	// An isolated node is neither reachable nor reaching.
	g.AddNode("island")
	_, err = dijkstra.ShortestPathData(g, "a", "island")
	require.ErrorIs(t, err, dijkstra.ErrPathNotFound)
}

func TestEdgesAreDirected(t *testing.T) {
	g := buildGraph(t, nil, []weightedEdge{{"A", "B", 1}})
	_, err := dijkstra.ShortestPathCost(g, "B", "A")
	require.ErrorIs(t, err, dijkstra.ErrPathNotFound)
}

func TestNilGraph(t *testing.T) {
	_, err := dijkstra.Search[string, float64](nil, "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

// failingStore reports every node as present and fails to list edges.
type failingStore struct{ err error }

func (f failingStore) ContainsNode(string) bool { return true }

func (f failingStore) OutgoingEdges(string) ([]core.Edge[string, float64], error) {
	return nil, f.err
}

func TestStoreErrorIsWrapped(t *testing.T) {
	boom := errors.New("disk on fire")
	_, err := dijkstra.ShortestPathCost[string, float64](failingStore{err: boom}, "A", "B")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "A")
}

// ------------------------------------------------------------------------
// 4. Engine behavior
// ------------------------------------------------------------------------

func TestStaleRecordsAreSkipped(t *testing.T) {
	// B is first pushed at 10, then improved to 2 through C; the B(10)
	// record is popped after B(2) and must be ignored.
	g := buildGraph(t, nil, []weightedEdge{
		{"A", "B", 10}, {"A", "C", 1}, {"C", "B", 1}, {"B", "D", 20},
	})

	res, err := dijkstra.Search(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, 22.0, res.Cost())
	assert.Equal(t, []string{"A", "C", "B", "D"}, dijkstra.Reconstruct(res))

	st := res.Stats()
	assert.Equal(t, 1, st.Stale)
	assert.Equal(t, 5, st.Pushed)
	assert.Equal(t, 5, st.Popped)
}

func TestEarlyTermination(t *testing.T) {
	g := buildGraph(t, nil, []weightedEdge{
		{"A", "B", 1}, {"A", "C", 5}, {"C", "D", 1}, {"D", "E", 1},
	})

	res, err := dijkstra.Search(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Cost())

	// Only A and B were popped; C was pushed but never expanded.
	st := res.Stats()
	assert.Equal(t, 2, st.Popped)
	assert.Equal(t, 3, st.Pushed)
	assert.Equal(t, 2, st.Relaxed)
}

func TestResultPredecessorChain(t *testing.T) {
	res, err := dijkstra.Search(scenarioB(t), "a", "f")
	require.NoError(t, err)

	var walked []string
	rec := res.Terminal()
	for {
		walked = append(walked, rec.Node)
		prev, ok := res.Predecessor(rec)
		if !ok {
			assert.False(t, rec.HasPredecessor())
			assert.Zero(t, rec.Cost)
			break
		}
		assert.True(t, rec.HasPredecessor())
		assert.Less(t, prev.Cost, rec.Cost)
		rec = prev
	}
	assert.Equal(t, []string{"f", "c", "e", "b", "a"}, walked)
}

func TestReconstructNil(t *testing.T) {
	assert.Nil(t, dijkstra.Reconstruct[string](nil))
}

func TestZeroWeightEdges(t *testing.T) {
	g := buildGraph(t, nil, []weightedEdge{{"A", "B", 0}, {"B", "C", 0}, {"A", "C", 1}})
	cost, err := dijkstra.ShortestPathCost(g, "A", "C")
	require.NoError(t, err)
	assert.Zero(t, cost)
}

func TestMultiEdgesUseCheapest(t *testing.T) {
	g := core.NewGraph[string, float64](core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B", 9)
	_, _ = g.AddEdge("A", "B", 2)
	cost, err := dijkstra.ShortestPathCost(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 2.0, cost)
}

func TestIntegerWeightsAndStructKeys(t *testing.T) {
	type cell struct{ R, C int }
	g := core.NewGraph[cell, uint16]()
	_, _ = g.AddEdge(cell{0, 0}, cell{0, 1}, 4)
	_, _ = g.AddEdge(cell{0, 1}, cell{1, 1}, 4)
	_, _ = g.AddEdge(cell{0, 0}, cell{1, 0}, 1)
	_, _ = g.AddEdge(cell{1, 0}, cell{1, 1}, 2)

	path, err := dijkstra.ShortestPathData(g, cell{0, 0}, cell{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []cell{{0, 0}, {1, 0}, {1, 1}}, path)
}

// ------------------------------------------------------------------------
// 5. Options
// ------------------------------------------------------------------------

func TestNegativeWeights(t *testing.T) {
	g := buildGraph(t, nil, []weightedEdge{{"A", "B", 2}, {"B", "C", -1}})

	// Default: no validation, the search runs to completion.
	cost, err := dijkstra.ShortestPathCost(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, 1.0, cost)

	_, err = dijkstra.ShortestPathCost(g, "A", "C", dijkstra.WithNegativeWeightCheck())
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "B→C")
}

func TestMaxCost(t *testing.T) {
	g := scenarioA(t)

	_, err := dijkstra.ShortestPathCost(g, "D", "I", dijkstra.WithMaxCost(16))
	require.ErrorIs(t, err, dijkstra.ErrPathNotFound)

	cost, err := dijkstra.ShortestPathCost(g, "D", "I", dijkstra.WithMaxCost(17))
	require.NoError(t, err)
	assert.Equal(t, 17.0, cost)

	cost, err = dijkstra.ShortestPathCost(g, "D", "D", dijkstra.WithMaxCost(0))
	require.NoError(t, err)
	assert.Zero(t, cost)
}

func TestInfEdgeThreshold(t *testing.T) {
	g := buildGraph(t, nil, []weightedEdge{{"A", "B", 2}, {"B", "C", 4}, {"A", "C", 5}})

	path, err := dijkstra.ShortestPathData(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, path)

	// Edges weighing ≥ 5 become walls, forcing the detour.
	path, err = dijkstra.ShortestPathData(g, "A", "C", dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)

	_, err = dijkstra.ShortestPathData(g, "A", "C", dijkstra.WithInfEdgeThreshold(2))
	require.ErrorIs(t, err, dijkstra.ErrPathNotFound)
}

func TestBadOptions(t *testing.T) {
	g := scenarioB(t)
	for name, tc := range map[string]struct {
		opt  dijkstra.Option
		want error
	}{
		"negative max cost": {dijkstra.WithMaxCost(-1), dijkstra.ErrBadMaxCost},
		"NaN max cost":      {dijkstra.WithMaxCost(math.NaN()), dijkstra.ErrBadMaxCost},
		"zero threshold":    {dijkstra.WithInfEdgeThreshold(0), dijkstra.ErrBadInfThreshold},
		"NaN threshold":     {dijkstra.WithInfEdgeThreshold(math.NaN()), dijkstra.ErrBadInfThreshold},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := dijkstra.Search(g, "a", "f", tc.opt)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	o := dijkstra.DefaultOptions()
	assert.False(t, o.NegativeWeightCheck)
	assert.True(t, math.IsInf(o.MaxCost, 1))
	assert.True(t, math.IsInf(o.InfEdgeThreshold, 1))
	assert.NotNil(t, o.Logger)
}

// ------------------------------------------------------------------------
// 6. Distances
// ------------------------------------------------------------------------

func TestDistances(t *testing.T) {
	dist, err := dijkstra.Distances(scenarioB(t), "a")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"a": 0, "b": 3, "d": 5, "e": 4, "c": 5, "f": 6}, dist)

	dist, err = dijkstra.Distances(scenarioB(t), "c")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"c": 0, "f": 1}, dist)

	dist, err = dijkstra.Distances(scenarioB(t), "a", dijkstra.WithMaxCost(4))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"a": 0, "b": 3, "e": 4}, dist)

	_, err = dijkstra.Distances(scenarioB(t), "zz")
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
}

func TestDistancesAgreeWithSearch(t *testing.T) {
	g := scenarioA(t)
	for _, s := range g.Nodes() {
		dist, err := dijkstra.Distances(g, s)
		require.NoError(t, err)
		for _, e := range g.Nodes() {
			cost, err := dijkstra.ShortestPathCost(g, s, e)
			want, reachable := dist[e]
			if !reachable {
				require.ErrorIs(t, err, dijkstra.ErrPathNotFound)
				continue
			}
			require.NoError(t, err)
			assert.Equal(t, want, cost, fmt.Sprintf("%s→%s", s, e))
		}
	}
}
