// SPDX-License-Identifier: MIT
// Package: treedist/tree
//
// traverse.go - subtree sizes, centroid location and distance labelling
// over live components, plus the permanent removal marks.
//
// All walks run on t.stack and exclude the vertex they came from instead of
// marking visited vertices, so removal marks are read-only here.

package tree

// SubtreeSizes runs a DFS from start over its live component and stores, for
// every visited vertex v, the size of v's subtree when the component is
// rooted at start. It returns the component size.
//
// Removal marks are not modified.
// Complexity: O(s) time, O(s) stack for a component of size s.
func (t *Tree) SubtreeSizes(start int) (int, error) {
	if err := t.checkStart(start); err != nil {
		return 0, err
	}
	return t.subtreeSizes(start), nil
}

// subtreeSizes is SubtreeSizes without validation.
func (t *Tree) subtreeSizes(start int) int {
	st := append(t.stack[:0], frame{v: start, parent: -1})
	t.size[start] = 1
	for len(st) > 0 {
		top := &st[len(st)-1]
		nbrs := t.adj[top.v]
		if top.next < len(nbrs) {
			u := nbrs[top.next]
			top.next++
			if u == top.parent || t.removed[u] {
				continue
			}
			t.size[u] = 1
			st = append(st, frame{v: u, parent: top.v})
			continue
		}
		// post-order: fold the finished subtree into its parent
		if top.parent >= 0 {
			t.size[top.parent] += t.size[top.v]
		}
		st = st[:len(st)-1]
	}
	t.stack = st

	return t.size[start]
}

// SubtreeSize returns the slot written for v by the latest SubtreeSizes or
// Centroid call. For the start vertex of that call it is the component size.
func (t *Tree) SubtreeSize(v int) (int, error) {
	if err := t.checkVertex(v); err != nil {
		return 0, err
	}
	return t.size[v], nil
}

// Centroid returns the centroid of the live component containing v: a vertex
// whose removal leaves no piece larger than half the component.
//
// Subtree sizes are computed from v; the walk then moves toward the single
// live neighbour whose subtree holds more than half the component and stops
// when none does. The side the walk came from is never re-entered: its size
// is the component size minus the current subtree, which is below half once
// the walk has moved there.
// Complexity: O(s).
func (t *Tree) Centroid(v int) (int, error) {
	if err := t.checkStart(v); err != nil {
		return 0, err
	}
	total := t.subtreeSizes(v)
	prev := -1
	for {
		next := -1
		for _, u := range t.adj[v] {
			if u == prev || t.removed[u] {
				continue
			}
			if 2*t.size[u] > total {
				next = u
				break
			}
		}
		if next < 0 {
			return v, nil
		}
		prev, v = v, next
	}
}

// ShortestPaths walks the live component of start and calls visit(v, d) for
// every vertex v with d its edge distance from start. start itself is
// reported first with d = 0; the rest follow in depth-first pre-order.
//
// Removal marks are not modified; visit must not call Remove or Restore.
// Complexity: O(s).
func (t *Tree) ShortestPaths(start int, visit func(v, dist int)) error {
	if err := t.checkStart(start); err != nil {
		return err
	}
	st := append(t.stack[:0], frame{v: start, parent: -1})
	for len(st) > 0 {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		visit(f.v, f.dist)
		nbrs := t.adj[f.v]
		// reverse push keeps adjacency order on pop
		for i := len(nbrs) - 1; i >= 0; i-- {
			u := nbrs[i]
			if u == f.parent || t.removed[u] {
				continue
			}
			st = append(st, frame{v: u, parent: f.v, dist: f.dist + 1})
		}
	}
	t.stack = st

	return nil
}

// Remove permanently excludes v from every traversal until Restore.
func (t *Tree) Remove(v int) error {
	if err := t.checkVertex(v); err != nil {
		return err
	}
	t.removed[v] = true
	return nil
}

// Restore clears v's removal mark.
func (t *Tree) Restore(v int) error {
	if err := t.checkVertex(v); err != nil {
		return err
	}
	t.removed[v] = false
	return nil
}

// Removed reports whether v is currently excluded.
func (t *Tree) Removed(v int) (bool, error) {
	if err := t.checkVertex(v); err != nil {
		return false, err
	}
	return t.removed[v], nil
}

// RestoreAll clears every removal mark.
func (t *Tree) RestoreAll() {
	clear(t.removed)
}
