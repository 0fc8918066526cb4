// SPDX-License-Identifier: MIT
// Package: treedist/centroid
//
// oracle.go - distance queries over a finished Decomposition.

package centroid

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// queryCheckEvery is how many pairs a DistMany worker answers between
// cancellation checks.
const queryCheckEvery = 1024

// Len returns the number of vertices.
func (d *Decomposition) Len() int { return len(d.trails) }

// Root returns the centroid of the whole tree.
func (d *Decomposition) Root() int { return d.root }

func (d *Decomposition) checkVertex(v int) error {
	if v < 0 || v >= len(d.trails) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, len(d.trails))
	}
	return nil
}

// Dist returns the number of edges on the path between a and b.
//
// Both trails are walked from the root while their centroids agree; the
// answer is the distance sum at the last agreeing entry. The first entries
// always agree, and a == b never diverges and ends at its own (v, 0) entry.
// Complexity: O(log n), no allocation.
func (d *Decomposition) Dist(a, b int) (int, error) {
	if err := d.checkVertex(a); err != nil {
		return 0, err
	}
	if err := d.checkVertex(b); err != nil {
		return 0, err
	}
	dist, _ := d.meet(a, b)
	return dist, nil
}

// Meet returns the divergence point of a and b: the deepest centroid present
// in both trails. It lies on the tree path between a and b.
func (d *Decomposition) Meet(a, b int) (int, error) {
	if err := d.checkVertex(a); err != nil {
		return 0, err
	}
	if err := d.checkVertex(b); err != nil {
		return 0, err
	}
	_, c := d.meet(a, b)
	return c, nil
}

// meet walks both trails in lock-step. Indices are assumed valid.
func (d *Decomposition) meet(a, b int) (dist, c int) {
	ta, tb := d.trails[a], d.trails[b]
	if len(tb) < len(ta) {
		ta, tb = tb, ta
	}
	for i := range ta {
		if ta[i].Centroid != tb[i].Centroid {
			break
		}
		dist, c = ta[i].Dist+tb[i].Dist, ta[i].Centroid
	}
	return dist, c
}

// Trail returns a copy of v's trail, root centroid first.
func (d *Decomposition) Trail(v int) ([]Entry, error) {
	if err := d.checkVertex(v); err != nil {
		return nil, err
	}
	out := make([]Entry, len(d.trails[v]))
	copy(out, d.trails[v])
	return out, nil
}

// Level returns the depth of v in the centroid tree (0 for the root).
// len(Trail(v)) == Level(v)+1.
func (d *Decomposition) Level(v int) (int, error) {
	if err := d.checkVertex(v); err != nil {
		return 0, err
	}
	return d.level[v], nil
}

// Parent returns v's parent in the centroid tree, or -1 for the root.
func (d *Decomposition) Parent(v int) (int, error) {
	if err := d.checkVertex(v); err != nil {
		return 0, err
	}
	return d.parent[v], nil
}

// MaxTrail returns the longest trail length, i.e. the centroid tree height + 1.
func (d *Decomposition) MaxTrail() int {
	m := 0
	for _, tr := range d.trails {
		m = max(m, len(tr))
	}
	return m
}

// DistMany answers every pair concurrently and returns the distances in
// input order. Pairs are split into contiguous chunks, one per worker
// (default GOMAXPROCS). The first invalid pair or a cancelled ctx stops the
// batch and its error is returned. A nil ctx means context.Background.
// Complexity: O(len(pairs) * log n) work over the workers.
func (d *Decomposition) DistMany(ctx context.Context, pairs []Pair, opts ...QueryOption) ([]int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	o := defaultQueryOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	out := make([]int, len(pairs))
	if len(pairs) == 0 {
		return out, nil
	}
	workers := min(o.workers, len(pairs))
	chunk := (len(pairs) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(pairs); lo += chunk {
		hi := min(lo+chunk, len(pairs))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if (i-lo)%queryCheckEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				dist, err := d.Dist(pairs[i].A, pairs[i].B)
				if err != nil {
					return fmt.Errorf("centroid: pair #%d: %w", i, err)
				}
				out[i] = dist
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
