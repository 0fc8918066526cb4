// SPDX-License-Identifier: MIT
// Package: treedist/tree
//
// types.go - Tree type and sentinel errors.

package tree

import (
	"errors"
	"fmt"
)

// Sentinel errors for tree construction and traversal.
var (
	// ErrEmptyTree is returned when a tree with no vertices is requested.
	ErrEmptyTree = errors.New("tree: vertex count must be at least 1")

	// ErrVertexOutOfRange indicates a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("tree: vertex index out of range")

	// ErrTooManyVertices is returned when n exceeds MaxVertices.
	ErrTooManyVertices = errors.New("tree: vertex count exceeds limit")

	// ErrSelfLoop indicates an edge from a vertex to itself.
	ErrSelfLoop = errors.New("tree: self-loop not allowed")

	// ErrTooManyEdges indicates an attempt to add more than n-1 edges.
	ErrTooManyEdges = errors.New("tree: too many edges for a tree")

	// ErrVertexRemoved indicates a traversal was started from a removed vertex.
	ErrVertexRemoved = errors.New("tree: start vertex is removed")

	// ErrNotTree indicates the edge count is not n-1.
	ErrNotTree = errors.New("tree: edge count is not n-1")

	// ErrDisconnected indicates that not every vertex is reachable.
	ErrDisconnected = errors.New("tree: graph is disconnected")

	// ErrMalformedInput indicates an edge list that could not be parsed.
	ErrMalformedInput = errors.New("tree: malformed edge list")
)

// MaxVertices is the largest vertex count New accepts. A decomposition of
// n vertices holds about n*log2(n) trail entries, so larger trees do not fit
// in memory on current hardware.
const MaxVertices = 1 << 26

// Edge is an undirected edge between vertices A and B.
type Edge struct {
	A, B int
}

// Tree is an unweighted, undirected tree over vertices [0, n).
//
// The adjacency is the only persistent structure. size and removed are the
// scratch state of the traversals: size[v] is valid only right after the
// SubtreeSizes call that wrote it, removed[v] persists until Restore.
type Tree struct {
	adj   [][]int // neighbours in insertion order
	edges int     // number of edges added

	size    []int   // subtree sizes of the latest SubtreeSizes call
	removed []bool  // permanent exclusion marks
	stack   []frame // reusable traversal stack
}

// frame is one explicit-stack entry of an iterative DFS.
//
// next indexes adj[v] for post-order walks; dist is used by pre-order walks.
type frame struct {
	v, parent int
	next      int
	dist      int
}

// checkVertex reports ErrVertexOutOfRange for v outside [0, n).
func (t *Tree) checkVertex(v int) error {
	if v < 0 || v >= len(t.adj) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, len(t.adj))
	}
	return nil
}

// checkStart validates a traversal start vertex.
func (t *Tree) checkStart(v int) error {
	if err := t.checkVertex(v); err != nil {
		return err
	}
	if t.removed[v] {
		return fmt.Errorf("%w: %d", ErrVertexRemoved, v)
	}
	return nil
}
