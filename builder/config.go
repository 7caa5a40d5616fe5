// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn     = ExcelColumnIDFn          ("A","B",…,"Z","AA",…)
//   • rng      = nil                      (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn          (constant DefaultEdgeWeight)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex label strategy: index -> label.
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     ExcelColumnIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() int64 {
	return c.weightFn(c.rng)
}
