// SPDX-License-Identifier: MIT
// Package: treedist/centroid
//
// build.go - work-list driven centroid decomposition.
//
// Each popped task names one vertex of a live component. The component's
// centroid is located, every vertex of the component gets a trail entry for
// it, the centroid is removed and the remaining pieces are pushed. The outer
// loop replaces recursion; the traversals it calls are iterative as well.

package centroid

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/treedist/tree"
)

// task is a pending live component, identified by any of its vertices.
type task struct {
	root   int // vertex inside the component
	parent int // centroid that split this component off, -1 for the whole tree
	level  int // depth of the component's centroid in the centroid tree
}

// builder carries the state of one Build call.
type builder struct {
	t    *tree.Tree
	opts BuildOptions
	dec  *Decomposition
	work []task
}

// Build decomposes t and returns the immutable Decomposition.
//
// t must form a tree (checked with Validate before any traversal). Build uses
// t's removal marks as scratch: any marks present on entry are discarded and
// all marks are cleared again before Build returns, on success or failure.
//
// Errors: ErrNilTree, tree.ErrNotTree or tree.ErrDisconnected (wrapped),
// ctx.Err() from WithContext, or the OnCentroid error (wrapped).
// Complexity: O(n log n) time; O(n log n) space for the trails, allocated
// up front as one backing array.
func Build(t *tree.Tree, opts ...Option) (*Decomposition, error) {
	if t == nil {
		return nil, ErrNilTree
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("centroid: %w", err)
	}

	n := t.VertexCount()
	// a trail never exceeds floor(log2 n)+1 entries
	depth := bits.Len(uint(n))
	b := &builder{
		t:    t,
		opts: o,
		dec: &Decomposition{
			trails: make([][]Entry, n),
			parent: make([]int, n),
			level:  make([]int, n),
			root:   -1,
		},
		work: make([]task, 0, depth+1),
	}
	backing := make([]Entry, n*depth)
	for v := range b.dec.trails {
		b.dec.trails[v] = backing[v*depth : v*depth : (v+1)*depth]
	}

	t.RestoreAll()
	defer t.RestoreAll()
	if err := b.run(); err != nil {
		return nil, err
	}

	return b.dec, nil
}

// run drains the work list starting from the whole tree.
func (b *builder) run() error {
	b.work = append(b.work, task{root: 0, parent: -1, level: 0})
	for len(b.work) > 0 {
		select {
		case <-b.opts.Ctx.Done():
			return b.opts.Ctx.Err()
		default:
		}

		tk := b.work[len(b.work)-1]
		b.work = b.work[:len(b.work)-1]

		c, size, err := b.findCentroid(tk.root)
		if err != nil {
			return err
		}
		if err = b.opts.OnCentroid(c, tk.level, size); err != nil {
			return fmt.Errorf("centroid: OnCentroid hook at %d: %w", c, err)
		}
		if err = b.labelAndSplit(c, tk); err != nil {
			return err
		}
	}

	return nil
}

// findCentroid returns the centroid of the live component containing root
// together with the component size.
func (b *builder) findCentroid(root int) (int, int, error) {
	c, err := b.t.Centroid(root)
	if err != nil {
		return 0, 0, fmt.Errorf("centroid: locate centroid from %d: %w", root, err)
	}
	// the start slot of the sizing pass holds the whole component
	size, err := b.t.SubtreeSize(root)
	if err != nil {
		return 0, 0, fmt.Errorf("centroid: component size at %d: %w", root, err)
	}

	return c, size, nil
}

// labelAndSplit appends (c, dist) to the trail of every vertex in c's
// component, removes c and queues the pieces left behind.
//
// Labelling happens before removal so that c itself is reached at distance 0.
// Pieces are pushed in reverse adjacency order so they pop in adjacency order.
func (b *builder) labelAndSplit(c int, tk task) error {
	trails := b.dec.trails
	err := b.t.ShortestPaths(c, func(v, dist int) {
		trails[v] = append(trails[v], Entry{Centroid: c, Dist: dist})
	})
	if err != nil {
		return fmt.Errorf("centroid: label component of %d: %w", c, err)
	}

	if err = b.t.Remove(c); err != nil {
		return fmt.Errorf("centroid: remove %d: %w", c, err)
	}
	b.dec.parent[c] = tk.parent
	b.dec.level[c] = tk.level
	if tk.parent < 0 {
		b.dec.root = c
	}

	nbrs, err := b.t.Neighbors(c)
	if err != nil {
		return fmt.Errorf("centroid: neighbors of %d: %w", c, err)
	}
	for i := len(nbrs) - 1; i >= 0; i-- {
		if gone, _ := b.t.Removed(nbrs[i]); gone {
			continue
		}
		b.work = append(b.work, task{root: nbrs[i], parent: c, level: tk.level + 1})
	}

	return nil
}
