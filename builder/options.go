// SPDX-License-Identifier: MIT
// Package: treedist/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors validate and panic on meaningless inputs;
//     constructors and BuildTree never panic.
//   - Determinism is explicit: randomness only comes from WithSeed or WithRand.
//   - Options are applied in order; a later RNG option replaces an earlier one.

package builder

import "math/rand"

// BuilderOption customizes a build by mutating builderConfig before the
// constructor runs.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG shared with the caller. The builder
// draws from it, so its state advances. Panics on nil; prefer WithSeed for
// reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		// fail fast: a nil source would surface later as ErrNeedRandSource
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a private *rand.Rand seeded with seed. The same seed with
// the same constructor and options always yields the same tree.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithShuffledLabels relabels the constructed tree with rng.Perm(n), keeping
// its shape. Requires an RNG (ErrNeedRandSource otherwise).
// Complexity: O(1) to apply; O(n) during the build.
func WithShuffledLabels() BuilderOption {
	return func(c *builderConfig) {
		c.shuffleLabels = true
	}
}

// WithShuffledEdges emits the edges in rng-shuffled order, which permutes
// every vertex's adjacency order and therefore the centroid tie-breaks.
// Requires an RNG (ErrNeedRandSource otherwise).
// Complexity: O(1) to apply; O(n) during the build.
func WithShuffledEdges() BuilderOption {
	return func(c *builderConfig) {
		c.shuffleEdges = true
	}
}
