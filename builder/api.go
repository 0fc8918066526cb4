// SPDX-License-Identifier: MIT
// Package: treedist/builder
//
// api.go - public entry points.
//
// Design contract:
//   - One orchestrator: BuildTree(con, opts...) resolves cfg, runs con, applies
//     shuffles and assembles a tree.Tree.
//   - Constructors are implemented in impl_*.go.
//   - Determinism: same constructor/options/seed ⇒ identical tree.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treedist/tree"
)

// Constructor emits a tree on [0, n) as its vertex count and edge list.
// Constructors MUST validate parameters first, emit exactly n-1 edges and
// return sentinel errors instead of panicking.
type Constructor func(cfg builderConfig) (n int, edges []tree.Edge, err error)

// BuildTree runs con with the resolved options and returns the tree.
// The result is checked with tree.Validate; a constructor emitting a
// non-tree is reported as ErrConstructFailed.
func BuildTree(con Constructor, opts ...BuilderOption) (*tree.Tree, error) {
	n, edges, err := Edges(con, opts...)
	if err != nil {
		return nil, err
	}
	t, err := tree.FromEdges(n, edges)
	if err != nil {
		return nil, fmt.Errorf("BuildTree: %w", err)
	}
	if err = t.Validate(); err != nil {
		return nil, fmt.Errorf("BuildTree: %w: %w", ErrConstructFailed, err)
	}
	return t, nil
}

// Edges runs con with the resolved options and returns the vertex count and
// the edge list after shuffles, without building a tree.
func Edges(con Constructor, opts ...BuilderOption) (int, []tree.Edge, error) {
	if con == nil {
		return 0, nil, fmt.Errorf("BuildTree: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	if (cfg.shuffleLabels || cfg.shuffleEdges) && cfg.rng == nil {
		return 0, nil, fmt.Errorf("BuildTree: shuffle: %w", ErrNeedRandSource)
	}

	n, edges, err := con(cfg)
	if err != nil {
		return 0, nil, fmt.Errorf("BuildTree: %w", err)
	}

	if cfg.shuffleLabels {
		perm := cfg.rng.Perm(n)
		for i := range edges {
			edges[i] = tree.Edge{A: perm[edges[i].A], B: perm[edges[i].B]}
		}
	}
	if cfg.shuffleEdges {
		cfg.rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })
	}

	return n, edges, nil
}

// Shapes lists the names accepted by ByName.
var Shapes = []string{"path", "star", "caterpillar", "binary", "random", "prufer"}

// ByName maps a shape name to a Constructor of n vertices. caterpillar uses
// two legs per spine vertex and binary is KAry(n, 2).
func ByName(shape string, n int) (Constructor, error) {
	switch shape {
	case "path":
		return Path(n), nil
	case "star":
		return Star(n), nil
	case "caterpillar":
		return Caterpillar(n, 2), nil
	case "binary":
		return KAry(n, 2), nil
	case "random":
		return RandomRecursive(n), nil
	case "prufer":
		return Prufer(n), nil
	default:
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownShape, shape, Shapes)
	}
}
