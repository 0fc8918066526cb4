// SPDX-License-Identifier: MIT
// Package: treedist/builder
//
// impl_random.go - stochastic constructors.
//
// RandomRecursive: vertex i attaches to rng.Intn(i); expected depth O(log n).
// Prufer: decode a uniform random Prüfer sequence; every labelled tree on n
// vertices is equally likely.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Both require cfg.rng (ErrNeedRandSource otherwise) and draw in a fixed
//     order, so a seed fixes the output.
//
// Complexity: O(n) time for both (Prufer decodes in linear time), O(n) space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treedist/tree"
)

const (
	methodRandomRecursive = "RandomRecursive"
	methodPrufer          = "Prufer"
	minRandomNodes        = 1
)

// RandomRecursive returns a Constructor for a random recursive tree.
func RandomRecursive(n int) Constructor {
	return func(cfg builderConfig) (int, []tree.Edge, error) {
		if n < minRandomNodes {
			return 0, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRecursive, n, minRandomNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return 0, nil, fmt.Errorf("%s: %w", methodRandomRecursive, ErrNeedRandSource)
		}
		edges := make([]tree.Edge, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, tree.Edge{A: cfg.rng.Intn(i), B: i})
		}
		return n, edges, nil
	}
}

// Prufer returns a Constructor for a uniformly random labelled tree.
func Prufer(n int) Constructor {
	return func(cfg builderConfig) (int, []tree.Edge, error) {
		if n < minRandomNodes {
			return 0, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPrufer, n, minRandomNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return 0, nil, fmt.Errorf("%s: %w", methodPrufer, ErrNeedRandSource)
		}
		if n == 1 {
			return 1, nil, nil
		}
		seq := make([]int, n-2)
		for i := range seq {
			seq[i] = cfg.rng.Intn(n)
		}
		return n, decodePrufer(n, seq), nil
	}
}

// decodePrufer turns a Prüfer sequence of length n-2 into n-1 edges in O(n).
//
// ptr scans upward for the smallest unused leaf; a vertex whose degree drops
// to one below ptr becomes the next leaf immediately.
func decodePrufer(n int, seq []int) []tree.Edge {
	degree := make([]int, n)
	for i := range degree {
		degree[i] = 1
	}
	for _, v := range seq {
		degree[v]++
	}

	ptr := 0
	for degree[ptr] != 1 {
		ptr++
	}
	leaf := ptr

	edges := make([]tree.Edge, 0, n-1)
	for _, v := range seq {
		edges = append(edges, tree.Edge{A: leaf, B: v})
		degree[v]--
		if degree[v] == 1 && v < ptr {
			leaf = v
			continue
		}
		ptr++
		for degree[ptr] != 1 {
			ptr++
		}
		leaf = ptr
	}
	edges = append(edges, tree.Edge{A: leaf, B: n - 1})

	return edges
}
