// SPDX-License-Identifier: MIT
// Package: treedist/builder
//
// impl_caterpillar.go - Caterpillar(n, legs).
//
// The spine is 0..s-1 with s = ceil(n/(legs+1)); the remaining vertices
// s..n-1 hang off spine vertex (i-s) mod s, so no spine vertex carries more
// than legs pendants.
//
// Contract:
//   - n ≥ 1 and legs ≥ 0 (else ErrTooFewVertices).
//   - No RNG needed.
//
// Complexity: O(n) time, O(n) space for the edge list.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treedist/tree"
)

const (
	methodCaterpillar   = "Caterpillar"
	minCaterpillarNodes = 1
)

// Caterpillar returns a Constructor for an n-vertex caterpillar with at most
// legs pendant vertices per spine vertex. legs == 0 degenerates to Path(n).
func Caterpillar(n, legs int) Constructor {
	return func(_ builderConfig) (int, []tree.Edge, error) {
		if n < minCaterpillarNodes {
			return 0, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCaterpillar, n, minCaterpillarNodes, ErrTooFewVertices)
		}
		if legs < 0 {
			return 0, nil, fmt.Errorf("%s: legs=%d < min=0: %w", methodCaterpillar, legs, ErrTooFewVertices)
		}
		spine := (n + legs) / (legs + 1)
		edges := make([]tree.Edge, 0, n-1)
		for i := 1; i < spine; i++ {
			edges = append(edges, tree.Edge{A: i - 1, B: i})
		}
		for i := spine; i < n; i++ {
			edges = append(edges, tree.Edge{A: (i - spine) % spine, B: i})
		}
		return n, edges, nil
	}
}
