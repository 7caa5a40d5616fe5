// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`:
//       fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, min, ErrTooFewVertices)
//   • Constructors never panic; validation panics are confined to option
//     constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor, or that Start ran on an
// empty graph.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that cannot proceed, such as a
// nil Constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a meaningless option value that must surface as
// an error rather than a panic (e.g. an unknown id scheme name from a CLI flag).
var ErrOptionViolation = errors.New("builder: invalid option value")
