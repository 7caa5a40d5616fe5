// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Adds n-1 leaves via cfg.idFn, then the hub labelled CenterLabel.
//   • Emits spokes Center: leaf in leaf index order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import "github.com/katalvlaran/lvtour/core"

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := minSize(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		leaves, err := addVertices(g, cfg, MethodStar, n-1)
		if err != nil {
			return err
		}
		if err = addHub(g, MethodStar); err != nil {
			return err
		}

		for _, leaf := range leaves {
			if err = addEdge(g, cfg, MethodStar, CenterLabel, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
