package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvtour/bfs"
	"github.com/katalvlaran/lvtour/core"
)

// ExampleUnreached spots a vertex that no tour could include.
func ExampleUnreached() {
	g := core.NewGraph()
	for i, label := range []string{"Kyiv", "Lviv", "Odesa", "Crimea"} {
		_ = g.AddVertex(core.VertexID(i+1), label)
	}
	_ = g.AddEdge("Kyiv", "Lviv", 540)
	_ = g.AddEdge("Lviv", "Odesa", 790)
	_ = g.AddEdge("Odesa", "Kyiv", 475)

	missing, err := bfs.Unreached(g, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, id := range missing {
		label, _ := g.Label(id)
		fmt.Println(label)
	}
	// Output:
	// Crimea
}
