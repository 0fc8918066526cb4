// SPDX-License-Identifier: MIT
// Package: treedist/tree
//
// tree.go - construction and read-only accessors.

package tree

import "fmt"

// New creates a tree with n isolated vertices 0..n-1 and no edges.
// Returns ErrEmptyTree if n < 1 and ErrTooManyVertices if n > MaxVertices.
// Complexity: O(n).
func New(n int) (*Tree, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrEmptyTree, n)
	}
	if n > MaxVertices {
		return nil, fmt.Errorf("%w: n=%d > %d", ErrTooManyVertices, n, MaxVertices)
	}
	return &Tree{
		adj:     make([][]int, n),
		size:    make([]int, n),
		removed: make([]bool, n),
		stack:   make([]frame, 0, n),
	}, nil
}

// FromEdges creates a tree with n vertices and adds every edge in order.
// The first failing AddEdge aborts construction.
func FromEdges(n int, edges []Edge) (*Tree, error) {
	t, err := New(n)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if err = t.AddEdge(e.A, e.B); err != nil {
			return nil, fmt.Errorf("tree: edge #%d: %w", i, err)
		}
	}
	return t, nil
}

// AddEdge records the undirected edge a—b.
//
// Bounds, self-loops and an edge count above n-1 are rejected. Cycles and
// disconnection are not detected here: the caller guarantees that the final
// edge set forms a tree (see Validate).
// Complexity: O(1) amortized.
func (t *Tree) AddEdge(a, b int) error {
	if err := t.checkVertex(a); err != nil {
		return err
	}
	if err := t.checkVertex(b); err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("%w: %d", ErrSelfLoop, a)
	}
	if t.edges >= len(t.adj)-1 {
		return fmt.Errorf("%w: limit %d reached adding %d—%d", ErrTooManyEdges, len(t.adj)-1, a, b)
	}
	t.adj[a] = append(t.adj[a], b)
	t.adj[b] = append(t.adj[b], a)
	t.edges++

	return nil
}

// VertexCount returns n.
func (t *Tree) VertexCount() int { return len(t.adj) }

// EdgeCount returns the number of edges added so far.
func (t *Tree) EdgeCount() int { return t.edges }

// Neighbors returns a copy of v's adjacency in insertion order.
func (t *Tree) Neighbors(v int) ([]int, error) {
	if err := t.checkVertex(v); err != nil {
		return nil, err
	}
	out := make([]int, len(t.adj[v]))
	copy(out, t.adj[v])
	return out, nil
}

// Degree returns the number of edges incident to v.
func (t *Tree) Degree(v int) (int, error) {
	if err := t.checkVertex(v); err != nil {
		return 0, err
	}
	return len(t.adj[v]), nil
}

// Edges returns every edge once, as (a, b) with a < b, ordered by a and then
// by b's position in a's adjacency.
func (t *Tree) Edges() []Edge {
	out := make([]Edge, 0, t.edges)
	for a, nbrs := range t.adj {
		for _, b := range nbrs {
			if a < b {
				out = append(out, Edge{A: a, B: b})
			}
		}
	}
	return out
}
