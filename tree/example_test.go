package tree_test

import (
	"fmt"

	"github.com/katalvlaran/treedist/tree"
)

// ExampleTree_Centroid locates the balance point of a 7-vertex path and the
// centroid of each half once it is removed.
func ExampleTree_Centroid() {
	// 0—1—2—3—4—5—6
	t, _ := tree.New(7)
	for i := 1; i < 7; i++ {
		_ = t.AddEdge(i-1, i)
	}

	c, _ := t.Centroid(0)
	fmt.Println("centroid:", c)

	_ = t.Remove(c)
	left, _ := t.Centroid(0)
	right, _ := t.Centroid(6)
	fmt.Println("halves:", left, right)

	// Output:
	// centroid: 3
	// halves: 1 5
}

// ExampleTree_ShortestPaths labels every vertex of a small tree with its
// distance from vertex 1.
func ExampleTree_ShortestPaths() {
	//     0
	//     |
	//     1
	//    / \
	//   2   3
	//       |
	//       4
	t, _ := tree.FromEdges(5, []tree.Edge{{0, 1}, {1, 2}, {1, 3}, {3, 4}})

	_ = t.ShortestPaths(1, func(v, dist int) {
		fmt.Printf("%d:%d ", v, dist)
	})
	fmt.Println()

	// Output:
	// 1:0 0:1 2:1 3:1 4:2
}
