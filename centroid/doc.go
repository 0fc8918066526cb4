// SPDX-License-Identifier: MIT

// Package centroid builds a centroid decomposition of a tree.Tree and answers
// exact shortest-path distance queries between any two vertices.
//
// What
//
//   - Build(t, opts...) repeatedly extracts the centroid of every remaining
//     live component and records, for every vertex, the trail of centroids
//     whose component contained it together with the distance to each.
//   - Decomposition.Dist(a, b) walks the two trails from the root and sums
//     the distances at the deepest centroid both trails share.
//   - Decomposition.DistMany evaluates a batch of pairs concurrently.
//
// Why it works
//
//	Two trails agree up to the first centroid whose removal separated a from
//	b. That centroid lies on the tree path between them (a tree has exactly
//	one path, and removing the centroid disconnected its endpoints), so
//	dist(a,b) = dist(a,c) + dist(c,b), both recorded in the trails.
//
// Trail order
//
//	Trails are appended in extraction order: the root centroid first, then
//	every deeper centroid that still contained the vertex. Entry i of the
//	trail of v is therefore the centroid at level i of the centroid tree,
//	and the last entry is v itself at distance 0. Dist relies on this order.
//
// Complexity (n = |V|)
//
//   - Build: O(n log n) time, O(n log n) memory; trails hold at most
//     floor(log2 n)+1 entries because every extraction halves the component.
//   - Dist:  O(log n) time, no allocation.
//
// Concurrency
//
//	Build mutates the scratch state of its tree and must not run
//	concurrently with any other use of that tree. The returned
//	Decomposition is immutable and safe for any number of concurrent readers.
//
// Errors
//
//   - ErrNilTree           nil tree passed to Build.
//   - tree.ErrNotTree, tree.ErrDisconnected  input is not a tree.
//   - ErrVertexOutOfRange  query vertex outside [0, n).
//   - ErrOptionViolation   invalid option value.
//   - context errors and wrapped hook errors from Build.
package centroid
