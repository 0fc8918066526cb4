// SPDX-License-Identifier: MIT
// Package: treedist/builder
//
// impl_star.go - Star(n): center 0, spokes (0, i) for i = 1..n-1.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - No RNG needed.
//   - Centre 0 is the root centroid; every leaf is a level-1 singleton.
//
// Complexity: O(n) time, O(n) space for the edge list.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treedist/tree"
)

const (
	methodStar   = "Star"
	minStarNodes = 1
)

// Star returns a Constructor that builds a star with center 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(_ builderConfig) (int, []tree.Edge, error) {
		if n < minStarNodes {
			return 0, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		edges := make([]tree.Edge, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, tree.Edge{A: 0, B: i})
		}
		return n, edges, nil
	}
}
