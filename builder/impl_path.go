// SPDX-License-Identifier: MIT
// Package: treedist/builder
//
// impl_path.go - Path(n): edges (i-1, i) for i = 1..n-1.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); Path(1) is a single vertex.
//   - No RNG needed.
//   - Deepest possible tree: its decomposition has floor(log2 n)+1 levels.
//
// Complexity: O(n) time, O(n) space for the edge list.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treedist/tree"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that builds the path 0—1—…—(n-1).
func Path(n int) Constructor {
	return func(_ builderConfig) (int, []tree.Edge, error) {
		if n < minPathNodes {
			return 0, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		edges := make([]tree.Edge, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, tree.Edge{A: i - 1, B: i})
		}
		return n, edges, nil
	}
}
