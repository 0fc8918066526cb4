// SPDX-License-Identifier: MIT
// Package: treedist/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor or option ran without
// an RNG (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownShape indicates ByName received a shape it does not know.
var ErrUnknownShape = errors.New("builder: unknown shape")

// ErrConstructFailed indicates a nil constructor or a constructor whose
// output is not a tree.
var ErrConstructFailed = errors.New("builder: construction failed")
