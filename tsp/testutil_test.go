// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package: graph fixtures and a brute-force oracle.
package tsp_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/core"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic seed for random fixtures.
	seedDet = int64(7)

	// oracleMaxN bounds brute-force instance sizes ((n-1)! permutations).
	oracleMaxN = 8

	// randomTrials is the number of random instances cross-checked per test.
	randomTrials = 40

	// maxRandWeight is the exclusive upper bound of random edge weights.
	maxRandWeight = 20
)

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

// edgeSpec names an undirected edge by labels.
type edgeSpec struct {
	a, b string
	w    int64
}

// mkGraph builds a graph with vertices labelled in order (ids 1..n), the
// given edges, and start (empty start leaves it unset).
func mkGraph(t testing.TB, labels []string, edges []edgeSpec, start string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, l := range labels {
		require.NoError(t, g.AddVertex(core.VertexID(i+1), l))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.a, e.b, e.w))
	}
	if start != "" {
		require.NoError(t, g.SetStart(start))
	}

	return g
}

// mkTriangle: A-B=1, B-C=2, A-C=3, start A. Optimal weight 6.
func mkTriangle(t testing.TB) *core.Graph {
	return mkGraph(t,
		[]string{"A", "B", "C"},
		[]edgeSpec{{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 3}},
		"A")
}

// mkComplete builds K_n with labels V1..Vn, every edge weight w, start V1.
func mkComplete(t testing.TB, n int, w int64) *core.Graph {
	t.Helper()
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("V%d", i+1)
	}
	var edges []edgeSpec
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, edgeSpec{labels[i], labels[j], w})
		}
	}

	return mkGraph(t, labels, edges, labels[0])
}

// mkRandom builds a graph on n vertices where each pair is joined with
// probability p and a weight in [0, maxRandWeight).
func mkRandom(t testing.TB, rng *rand.Rand, n int, p float64) *core.Graph {
	t.Helper()
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("R%d", i+1)
	}
	var edges []edgeSpec
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, edgeSpec{labels[i], labels[j], rng.Int63n(maxRandWeight)})
			}
		}
	}

	return mkGraph(t, labels, edges, labels[0])
}

// -----------------------------------------------------------------------------
// Oracle
// -----------------------------------------------------------------------------

// bruteForce enumerates every ordering of the non-start vertices and returns
// the lightest closed tour weight. found is false when no cycle exists.
func bruteForce(t testing.TB, g *core.Graph) (best int64, found bool) {
	t.Helper()
	ids, ok := g.Vertices()
	require.True(t, ok)
	require.LessOrEqual(t, len(ids), oracleMaxN)
	start, ok := g.Start()
	require.True(t, ok)

	rest := make([]core.VertexID, 0, len(ids)-1)
	for _, id := range ids {
		if id != start {
			rest = append(rest, id)
		}
	}

	best = math.MaxInt64
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			tour := append(append([]core.VertexID{start}, rest...), start)
			var sum int64
			for i := 0; i+1 < len(tour); i++ {
				w, adjacent := g.EdgeWeight(tour[i], tour[i+1])
				if !adjacent {
					return
				}
				sum += w
			}
			if sum < best {
				best, found = sum, true
			}
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)

	return best, found
}
