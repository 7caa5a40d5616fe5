// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic without an RNG.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j>i). One Float64 draw per
//     pair, then weight draws for accepted pairs, so a fixed seed reproduces
//     both topology and weights.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtour/core"
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := minSize(MethodRandomSparse, n, MinRandomNodes); err != nil {
			return err
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		labels, err := addVertices(g, cfg, MethodRandomSparse, n)
		if err != nil {
			return err
		}

		var (
			i, j int
			take bool
		)
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				switch {
				case p == MaxProbability:
					take = true
				case p == MinProbability:
					take = false
				default:
					take = cfg.rng.Float64() < p
				}
				if !take {
					continue
				}
				if err = addEdge(g, cfg, MethodRandomSparse, labels[i], labels[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
