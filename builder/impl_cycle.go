// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i: (i+1)%n for i=0..n-1.
//
// Complexity: O(n) vertices + O(n) edges.
//
// A cycle has exactly two Hamiltonian tours (one per direction) of equal
// weight, which makes it the simplest fixture with a known optimum.

package builder

import "github.com/katalvlaran/lvtour/core"

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := minSize(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		labels, err := addVertices(g, cfg, MethodCycle, n)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			if err = addEdge(g, cfg, MethodCycle, labels[i], labels[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
