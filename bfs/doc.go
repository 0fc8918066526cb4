// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a tree.Tree, returning
// unweighted shortest-path distances, parent links and visit order.
//
// What
//
//   - BFS(t, start, opts...) explores vertices in non-decreasing distance from start.
//   - Distances(t, start) is the common case: a dense distance slice.
//   - AllPairs(t) runs one BFS per vertex; O(n²) and meant as a reference
//     oracle for tests and the verify command.
//
// BFS walks the full adjacency of the tree and ignores removal marks, so it
// is independent of the traversal machinery the centroid decomposition uses.
//
// Determinism
//
//	Neighbors are enqueued in adjacency (insertion) order, so Order is
//	reproducible.
//
// Complexity
//
//   - Time:   O(V + E) per BFS
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx)   cancellation, checked once per dequeued vertex.
//   - WithMaxDepth(d)    stop expanding beyond depth d (> 0); 0 means no limit.
//   - WithOnVisit(fn)    hook per visited vertex; a returned error aborts.
//
// Errors
//
//   - ErrTreeNil             nil tree.
//   - ErrStartVertexNotFound start outside [0, n).
//   - ErrOptionViolation     invalid option (e.g. negative MaxDepth).
//   - wrapped OnVisit errors and context errors.
package bfs
