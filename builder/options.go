// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (nil functions, inverted ranges). Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex label generator: idx -> label.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight gives every edge weight w. Panics if w is outside [0, core.MaxWeight].
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws weights uniformly from [min, max]. Requires an RNG
// (WithSeed/WithRand); without one every edge gets min.
// Panics unless 0 ≤ min ≤ max ≤ core.MaxWeight.
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
