// SPDX-License-Identifier: MIT

// Package tree provides an index-based, unweighted, undirected tree and the
// primitive traversals a centroid decomposition is built from.
//
// What
//
//   - Tree: fixed vertex set [0, n), adjacency lists in insertion order.
//   - SubtreeSizes: sizes of every subtree of the live component rooted at a start vertex.
//   - Centroid: the balance point of the live component containing a vertex.
//   - ShortestPaths: edge distances from a start vertex to every vertex of its live component.
//   - Remove / Restore: permanent exclusion marks that split the tree into live components.
//   - Validate, ReadEdgeList, WriteEdgeList: cheap structure checks and a plain text format.
//
// Live components
//
//	A vertex marked with Remove is invisible to every traversal until it is
//	restored. The connected pieces of the remaining vertices are the live
//	components. Traversals never mark anything themselves: they exclude the
//	vertex they arrived from by tracking it on an explicit stack, so a
//	traversal leaves the removal marks exactly as it found them.
//
// Determinism
//
//	Neighbors are visited in the order their edges were added, so every
//	traversal, and therefore every centroid choice, is reproducible.
//
// Complexity (n = |V|, s = size of the live component)
//
//   - AddEdge:       O(1)
//   - SubtreeSizes:  O(s) time, O(s) stack
//   - Centroid:      O(s)
//   - ShortestPaths: O(s)
//   - Validate:      O(n)
//
// Concurrency
//
//	A Tree owns mutable scratch state (subtree-size slots, removal marks and a
//	reusable traversal stack). It is not safe for concurrent use.
//
// Errors
//
//   - ErrEmptyTree        n < 1.
//   - ErrVertexOutOfRange vertex index outside [0, n).
//   - ErrSelfLoop         edge from a vertex to itself.
//   - ErrTooManyEdges     more than n-1 edges added.
//   - ErrVertexRemoved    traversal started from a removed vertex.
//   - ErrNotTree          edge count differs from n-1.
//   - ErrDisconnected     some vertex is unreachable.
//   - ErrMalformedInput   edge-list text could not be parsed.
package tree
