// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// helpers.go: shared vertex/edge emission used by every constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtour/core"
)

// addVertices appends n vertices after those already in g. Vertex k (0-based
// within the whole graph) gets id k+1 and label cfg.idFn(k). The new labels
// are returned in index order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	base := g.VertexCount()
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = cfg.idFn(base + i)
		if err := g.AddVertex(core.VertexID(base+i+1), labels[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, labels[i], err)
		}
	}

	return labels, nil
}

// addHub appends one vertex labelled CenterLabel after those already in g.
func addHub(g *core.Graph, method string) error {
	id := core.VertexID(g.VertexCount() + 1)
	if err := g.AddVertex(id, CenterLabel); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, CenterLabel, err)
	}

	return nil
}

// addEdge draws a weight and links u-v.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// minSize rejects n below min with ErrTooFewVertices.
func minSize(method string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return nil
}
