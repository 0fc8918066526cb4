// SPDX-License-Identifier: MIT
// Package: treedist/bfs
//
// bfs.go - queue-driven breadth-first search.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/treedist/tree"
)

// walker encapsulates mutable BFS state.
type walker struct {
	t     *tree.Tree
	opts  BFSOptions
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on t from start.
// Returns ErrTreeNil, ErrStartVertexNotFound or ErrOptionViolation for bad
// input, or a context / OnVisit error.
func BFS(t *tree.Tree, start int, opts ...Option) (*BFSResult, error) {
	if t == nil {
		return nil, ErrTreeNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := t.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	w := &walker{
		t:     t,
		opts:  o,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = Unreached
		w.res.Parent[v] = -1
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, start)

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for qi := 0; qi < len(w.queue); qi++ {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		v := w.queue[qi]
		d := w.res.Depth[v]
		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}
		if w.opts.MaxDepth > 0 && d >= w.opts.MaxDepth {
			continue
		}

		nbrs, err := w.t.Neighbors(v)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %d: %w", v, err)
		}
		for _, u := range nbrs {
			if w.res.Depth[u] != Unreached {
				continue
			}
			w.res.Depth[u] = d + 1
			w.res.Parent[u] = v
			w.queue = append(w.queue, u)
		}
	}
	return nil
}

// Distances returns the edge distance from start to every vertex.
func Distances(t *tree.Tree, start int) ([]int, error) {
	res, err := BFS(t, start)
	if err != nil {
		return nil, err
	}
	return res.Depth, nil
}

// AllPairs returns the full distance matrix, one BFS per vertex.
// Complexity: O(n²) time and memory.
func AllPairs(t *tree.Tree) ([][]int, error) {
	if t == nil {
		return nil, ErrTreeNil
	}
	n := t.VertexCount()
	out := make([][]int, n)
	for v := 0; v < n; v++ {
		d, err := Distances(t, v)
		if err != nil {
			return nil, err
		}
		out[v] = d
	}
	return out, nil
}
