package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvtour/bfs"
	"github.com/katalvlaran/lvtour/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N vertices.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph()
	for i := 1; i <= N; i++ {
		_ = g.AddVertex(core.VertexID(i), fmt.Sprintf("v%d", i))
	}
	for i := 1; i < N; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 1)
	}
}
