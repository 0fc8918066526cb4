// Package treedist answers shortest-path distance queries on an unweighted
// tree in O(log n) after an O(n log n) centroid decomposition.
//
// What is inside?
//
//	tree/         index-based tree: subtree sizes, centroid, distance labelling, edge-list I/O
//	centroid/     decomposition builder and the read-only distance oracle (Dist, Meet, DistMany)
//	builder/      deterministic tree fixtures: path, star, caterpillar, k-ary, random, Prüfer
//	bfs/          brute-force BFS distances, the reference the oracle is checked against
//	converters/   tree.Tree <-> gonum graph.Undirected
//
// How does it work?
//
//	The centroid of a tree splits it into pieces of at most half its size.
//	Removing it and recursing on every piece gives a centroid tree of height
//	at most floor(log2 n)+1. Each vertex stores its trail: the centroids whose
//	components contained it, root first, with the distance to each. Any path
//	a—b passes through the deepest centroid shared by both trails, so
//	Dist(a, b) is the sum of the two distances stored there.
//
// Quick ASCII example:
//
//	0───1───2───3───4───5───6
//
//	root centroid 3, then 1 and 5, then the leaves:
//	trail(0) = (3,3) (1,1) (0,0)
//	trail(4) = (3,1) (5,1) (4,0)
//	Dist(0, 4) = 3 + 1 = 4
//
// A runnable scenario lives in examples/, and cmd/treedist is a small CLI
// for generating trees, querying edge-list files and verifying the oracle.
//
//	go get github.com/katalvlaran/treedist
package treedist
