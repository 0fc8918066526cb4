// SPDX-License-Identifier: MIT

// Package converters provides two-way adapters between tree.Tree and the
// gonum graph packages.
//
//   - FromGonum: any gonum graph.Undirected that forms a tree -> *tree.Tree,
//     plus the index -> node ID mapping.
//   - ToGonum: *tree.Tree -> *simple.UndirectedGraph with node IDs equal to
//     vertex indices.
//   - Distances: unit-weight shortest paths from one vertex, computed by
//     gonum's path.DijkstraFrom. Used as an independent reference for the
//     centroid oracle.
//
// Gonum node IDs are arbitrary int64 values; FromGonum relabels them to
// [0, n) in ascending ID order so the result is deterministic.
package converters
