// SPDX-License-Identifier: MIT
// Package: treedist/tree
//
// validate.go - cheap structural check of the tree precondition.

package tree

import "fmt"

// Validate checks that the edge set forms a tree: exactly n-1 edges and every
// vertex reachable from vertex 0. Together these rule out cycles.
//
// Removal marks are ignored.
// Complexity: O(n) time, O(n) memory.
func (t *Tree) Validate() error {
	n := len(t.adj)
	if t.edges != n-1 {
		return fmt.Errorf("%w: n=%d, edges=%d", ErrNotTree, n, t.edges)
	}

	seen := make([]bool, n)
	queue := make([]int, 1, n)
	seen[0] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, u := range t.adj[queue[qi]] {
			if !seen[u] {
				seen[u] = true
				queue = append(queue, u)
			}
		}
	}
	if len(queue) != n {
		return fmt.Errorf("%w: reached %d of %d vertices from 0", ErrDisconnected, len(queue), n)
	}

	return nil
}
