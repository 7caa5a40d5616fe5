// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/core"
)

// TestConcurrentAddVertexAndEdge ensures that concurrent inserts around a hub
// are all recorded and that each edge appears on both sides.
func TestConcurrentAddVertexAndEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(IDA, LabelA))

	errs := make(chan error, 2*NConcurrentVertices)
	var wg sync.WaitGroup
	wg.Add(NConcurrentVertices)
	for i := 0; i < NConcurrentVertices; i++ {
		go func(i int) {
			defer wg.Done()
			label := fmt.Sprintf("V%d", i)
			errs <- g.AddVertex(core.VertexID(i+10), label)
			errs <- g.AddEdge(LabelA, label, int64(i))
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	hub, ok := g.Neighbors(IDA)
	require.True(t, ok)
	require.Len(t, hub, NConcurrentVertices)
	require.Equal(t, NConcurrentVertices, g.EdgeCount())
	for _, nb := range hub {
		back, ok := g.Neighbors(nb.ID)
		require.True(t, ok)
		require.Equal(t, []core.Neighbor{{ID: IDA, Weight: nb.Weight}}, back)
	}
}

// TestConcurrentReadersAndClone runs lookups and clones against a writer.
// It only asserts absence of races and panics (run with -race).
func TestConcurrentReadersAndClone(t *testing.T) {
	g := NewTriangle(t)

	var wg sync.WaitGroup
	wg.Add(NReaders + 1)
	go func() {
		defer wg.Done()
		for i := 0; i < NReaders; i++ {
			_ = g.AddVertex(core.VertexID(100+i), fmt.Sprintf("W%d", i))
			_ = g.AddEdge(LabelA, fmt.Sprintf("W%d", i), Weight1)
		}
	}()
	for i := 0; i < NReaders; i++ {
		go func() {
			defer wg.Done()
			_, _ = g.Neighbors(IDA)
			_, _ = g.Vertices()
			_ = g.Clone()
		}()
	}
	wg.Wait()
}
