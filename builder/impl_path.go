// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// impl_path.go: implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i: i+1 for i=0..n-2.
//
// Complexity: O(n) vertices + O(n-1) edges.
//
// A path has no Hamiltonian cycle: it is the canonical no-solution fixture.

package builder

import "github.com/katalvlaran/lvtour/core"

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := minSize(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		labels, err := addVertices(g, cfg, MethodPath, n)
		if err != nil {
			return err
		}

		for i := 0; i+1 < n; i++ {
			if err = addEdge(g, cfg, MethodPath, labels[i], labels[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
