// SPDX-License-Identifier: MIT
// Package: treedist/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults: no RNG, labels and edge order exactly as the constructor emits them.

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Relabel vertices with rng.Perm(n) after construction.
	shuffleLabels bool
	// Emit edges in rng-shuffled order.
	shuffleEdges bool
}

// newBuilderConfig applies options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
