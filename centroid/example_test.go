package centroid_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/treedist/centroid"
	"github.com/katalvlaran/treedist/tree"
)

// ExampleBuild decomposes a 7-vertex path and answers a few queries.
func ExampleBuild() {
	// 0—1—2—3—4—5—6
	t, _ := tree.New(7)
	for i := 1; i < 7; i++ {
		_ = t.AddEdge(i-1, i)
	}

	dec, err := centroid.Build(t)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	trail, _ := dec.Trail(0)
	fmt.Println("root:", dec.Root())
	fmt.Println("trail of 0:", trail)

	d06, _ := dec.Dist(0, 6)
	d24, _ := dec.Dist(2, 4)
	fmt.Printf("dist(0,6)=%d dist(2,4)=%d\n", d06, d24)

	// Output:
	// root: 3
	// trail of 0: [{3 3} {1 1} {0 0}]
	// dist(0,6)=6 dist(2,4)=2
}

// ExampleDecomposition_DistMany answers a batch of queries concurrently.
func ExampleDecomposition_DistMany() {
	//       0
	//     / | \
	//    1  2  3
	//    |     |
	//    4     5
	t, _ := tree.FromEdges(6, []tree.Edge{{0, 1}, {0, 2}, {0, 3}, {1, 4}, {3, 5}})
	dec, _ := centroid.Build(t)

	pairs := []centroid.Pair{{A: 4, B: 5}, {A: 2, B: 4}, {A: 1, B: 1}}
	dists, err := dec.DistMany(context.Background(), pairs, centroid.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dists)

	// Output:
	// [4 3 0]
}

// ExampleWithOnCentroid traces the extraction order of a small star.
func ExampleWithOnCentroid() {
	t, _ := tree.FromEdges(4, []tree.Edge{{0, 1}, {0, 2}, {0, 3}})

	_, _ = centroid.Build(t, centroid.WithOnCentroid(func(c, level, size int) error {
		fmt.Printf("centroid %d level %d size %d\n", c, level, size)
		return nil
	}))

	// Output:
	// centroid 0 level 0 size 4
	// centroid 1 level 1 size 1
	// centroid 2 level 1 size 1
	// centroid 3 level 1 size 1
}
