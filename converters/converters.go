// SPDX-License-Identifier: MIT
// Package: treedist/converters
//
// converters.go - tree.Tree <-> gonum graph.Undirected.

package converters

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/treedist/tree"
)

var (
	// ErrNilGraph is returned when a nil graph or tree is passed in.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrEmptyGraph is returned when a gonum graph has no nodes.
	ErrEmptyGraph = errors.New("converters: graph has no nodes")
)

// FromGonum copies an undirected gonum graph into a tree.Tree.
//
// Vertex i of the result is the node whose ID is ids[i]; ids is sorted
// ascending. The graph must form a tree: the result is checked with
// Validate, so cycles and disconnection surface as tree.ErrNotTree,
// tree.ErrTooManyEdges or tree.ErrDisconnected.
func FromGonum(g graph.Undirected) (t *tree.Tree, ids []int64, err error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	nodes := graph.NodesOf(g.Nodes())
	if len(nodes) == 0 {
		return nil, nil, ErrEmptyGraph
	}

	ids = make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	slices.Sort(ids)
	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	if t, err = tree.New(len(ids)); err != nil {
		return nil, nil, fmt.Errorf("converters: %w", err)
	}
	for i, id := range ids {
		to := graph.NodesOf(g.From(id))
		// sorted so edge insertion order does not depend on map iteration
		slices.SortFunc(to, func(a, b graph.Node) int {
			return index[a.ID()] - index[b.ID()]
		})
		for _, nb := range to {
			j := index[nb.ID()]
			if j <= i {
				if j == i {
					return nil, nil, fmt.Errorf("converters: node %d: %w", id, tree.ErrSelfLoop)
				}
				continue
			}
			if err = t.AddEdge(i, j); err != nil {
				return nil, nil, fmt.Errorf("converters: edge %d—%d: %w", id, nb.ID(), err)
			}
		}
	}
	if err = t.Validate(); err != nil {
		return nil, nil, fmt.Errorf("converters: %w", err)
	}

	return t, ids, nil
}

// ToGonum copies t into a new simple.UndirectedGraph. Node IDs equal
// vertex indices; removal marks are ignored.
func ToGonum(t *tree.Tree) (*simple.UndirectedGraph, error) {
	if t == nil {
		return nil, ErrNilGraph
	}
	g := simple.NewUndirectedGraph()
	for v := 0; v < t.VertexCount(); v++ {
		g.AddNode(simple.Node(v))
	}
	for _, e := range t.Edges() {
		g.SetEdge(simple.Edge{F: simple.Node(e.A), T: simple.Node(e.B)})
	}

	return g, nil
}

// Distances returns the edge distance from start to every vertex of t using
// gonum's Dijkstra with unit weights. Unreachable vertices get -1.
func Distances(t *tree.Tree, start int) ([]int, error) {
	g, err := ToGonum(t)
	if err != nil {
		return nil, err
	}
	if start < 0 || start >= t.VertexCount() {
		return nil, fmt.Errorf("converters: %w: %d", tree.ErrVertexOutOfRange, start)
	}

	sp := path.DijkstraFrom(simple.Node(start), g)
	out := make([]int, t.VertexCount())
	for v := range out {
		w := sp.WeightTo(int64(v))
		if math.IsInf(w, 1) {
			out[v] = -1
			continue
		}
		out[v] = int(w)
	}

	return out, nil
}
