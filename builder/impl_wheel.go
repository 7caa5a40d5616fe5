// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + "Center", i.e., a cycle of size (n-1) plus a hub vertex.
//   • Therefore, n ≥ 4 (since the outer ring must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • Builds the outer ring with Cycle(n-1) under the same cfg.
//   • Adds the hub labelled CenterLabel and emits spokes in ring order.
//
// Complexity: O(n) vertices + O(2(n-1)) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtour/core"
)

// Wheel returns a Constructor that builds the wheel graph W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := minSize(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}

		base := g.VertexCount()
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", MethodWheel, err)
		}
		if err := addHub(g, MethodWheel); err != nil {
			return err
		}

		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, MethodWheel, CenterLabel, cfg.idFn(base+i)); err != nil {
				return err
			}
		}

		return nil
	}
}
