// SPDX-License-Identifier: MIT
// Package: treedist/builder
//
// impl_kary.go - KAry(n, k): heap layout, edge ((i-1)/k, i) for i = 1..n-1.
//
// Contract:
//   - n ≥ 1 and k ≥ 1 (else ErrTooFewVertices).
//   - No RNG needed; the last level fills left to right.
//
// Complexity: O(n) time, O(n) space for the edge list.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treedist/tree"
)

const (
	methodKAry   = "KAry"
	minKAryNodes = 1
	minKAryArity = 1
)

// KAry returns a Constructor for the complete k-ary tree on n vertices in
// heap order. k == 1 is a path.
func KAry(n, k int) Constructor {
	return func(_ builderConfig) (int, []tree.Edge, error) {
		if n < minKAryNodes {
			return 0, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodKAry, n, minKAryNodes, ErrTooFewVertices)
		}
		if k < minKAryArity {
			return 0, nil, fmt.Errorf("%s: k=%d < min=%d: %w", methodKAry, k, minKAryArity, ErrTooFewVertices)
		}
		edges := make([]tree.Edge, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, tree.Edge{A: (i - 1) / k, B: i})
		}
		return n, edges, nil
	}
}
