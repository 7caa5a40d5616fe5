// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return sentinel errors wrapped with method context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtour/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add vertices through addVertices so ids and labels stay dense.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Constructors compose: each one numbers its vertices after those already in
// the graph, so BuildGraph(nil, nil, Cycle(3), Path(2)) labels A,B,C then D,E.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...)
//     or core sentinels.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Start returns a Constructor that marks the vertex labelled label as the
// tour start. An empty label selects the vertex with the lowest id.
func Start(label string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if label == "" {
			ids, ok := g.Vertices()
			if !ok {
				return fmt.Errorf("%s: empty graph: %w", MethodStart, ErrTooFewVertices)
			}
			label, _ = g.Label(ids[0])
		}
		if err := g.SetStart(label); err != nil {
			return fmt.Errorf("%s: SetStart(%s): %w", MethodStart, label, err)
		}

		return nil
	}
}
