// Package core_test contains test helpers for lvtour/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep fixture ids and weights named so test bodies avoid magic numbers.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/core"
)

// Common vertex labels used across core tests.
const (
	LabelA = "A"
	LabelB = "B"
	LabelC = "C"
	LabelD = "D"
	LabelX = "X"
)

// Common vertex ids used across core tests.
const (
	IDA core.VertexID = 1
	IDB core.VertexID = 2
	IDC core.VertexID = 3
	IDD core.VertexID = 4
)

// Common weights used across core tests.
const (
	Weight0 = 0
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight5 = 5
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentVertices = 200
	NReaders            = 50
)

// NewTriangle returns A,B,C with edges A-B=1, B-C=2, A-C=3 and start A.
func NewTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(IDA, LabelA))
	require.NoError(t, g.AddVertex(IDB, LabelB))
	require.NoError(t, g.AddVertex(IDC, LabelC))
	require.NoError(t, g.AddEdge(LabelA, LabelB, Weight1))
	require.NoError(t, g.AddEdge(LabelB, LabelC, Weight2))
	require.NoError(t, g.AddEdge(LabelA, LabelC, Weight3))
	require.NoError(t, g.SetStart(LabelA))

	return g
}

// NeighborIDs projects an adjacency list onto its vertex ids.
func NeighborIDs(nbs []core.Neighbor) []core.VertexID {
	out := make([]core.VertexID, len(nbs))
	for i, nb := range nbs {
		out[i] = nb.ID
	}

	return out
}
