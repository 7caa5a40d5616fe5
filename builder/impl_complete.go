// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds n vertices after those already in g (see addVertices).
//   • Emits each unordered pair {i,j} with i<j exactly once.
//   • Weight per edge: cfg.weightFn(cfg.rng).
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges emission.
//   • Space: O(n) extra for the label slice.
//
// Determinism:
//   • Deterministic pair order: lexicographic by (i,j), i<j.
//   • Deterministic weights for a fixed cfg.rng/weightFn.

package builder

import "github.com/katalvlaran/lvtour/core"

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := minSize(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		labels, err := addVertices(g, cfg, MethodComplete, n)
		if err != nil {
			return err
		}

		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err = addEdge(g, cfg, MethodComplete, labels[i], labels[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
