package converters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/treedist/builder"
	"github.com/katalvlaran/treedist/centroid"
	"github.com/katalvlaran/treedist/converters"
	"github.com/katalvlaran/treedist/tree"
)

// gonumGraph builds a simple undirected graph from ID pairs.
func gonumGraph(ids []int64, edges [][2]int64) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for _, id := range ids {
		g.AddNode(simple.Node(id))
	}
	for _, e := range edges {
		g.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}
	return g
}

func TestFromGonum_Relabels(t *testing.T) {
	// 40—10—30, 10—20
	g := gonumGraph([]int64{40, 10, 30, 20}, [][2]int64{{40, 10}, {10, 30}, {10, 20}})

	tr, ids, err := converters.FromGonum(g)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 20, 30, 40}, ids)
	assert.Equal(t, 4, tr.VertexCount())
	assert.Equal(t, []tree.Edge{{A: 0, B: 1}, {A: 0, B: 2}, {A: 0, B: 3}}, tr.Edges())
}

func TestFromGonum_Errors(t *testing.T) {
	_, _, err := converters.FromGonum(nil)
	assert.ErrorIs(t, err, converters.ErrNilGraph)

	_, _, err = converters.FromGonum(simple.NewUndirectedGraph())
	assert.ErrorIs(t, err, converters.ErrEmptyGraph)

	triangle := gonumGraph([]int64{1, 2, 3}, [][2]int64{{1, 2}, {2, 3}, {3, 1}})
	_, _, err = converters.FromGonum(triangle)
	assert.ErrorIs(t, err, tree.ErrTooManyEdges)

	// triangle plus an isolated node: n-1 edges but not connected
	split := gonumGraph([]int64{1, 2, 3, 99}, [][2]int64{{1, 2}, {2, 3}, {3, 1}})
	_, _, err = converters.FromGonum(split)
	assert.ErrorIs(t, err, tree.ErrDisconnected)

	forest := gonumGraph([]int64{1, 2, 3}, [][2]int64{{1, 2}})
	_, _, err = converters.FromGonum(forest)
	assert.ErrorIs(t, err, tree.ErrNotTree)
}

func TestToGonum_RoundTrip(t *testing.T) {
	tr, err := builder.BuildTree(builder.Prufer(80), builder.WithSeed(6))
	require.NoError(t, err)

	g, err := converters.ToGonum(tr)
	require.NoError(t, err)
	assert.Equal(t, 80, g.Nodes().Len())
	assert.Equal(t, 79, g.Edges().Len())

	back, ids, err := converters.FromGonum(g)
	require.NoError(t, err)
	for i, id := range ids {
		assert.Equal(t, int64(i), id)
	}
	assert.ElementsMatch(t, tr.Edges(), back.Edges())

	_, err = converters.ToGonum(nil)
	assert.ErrorIs(t, err, converters.ErrNilGraph)
}

// TestDistances_AgreeWithOracle cross-checks the centroid oracle against
// gonum's Dijkstra on random trees.
func TestDistances_AgreeWithOracle(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		tr, err := builder.BuildTree(builder.RandomRecursive(60), builder.WithSeed(seed), builder.WithShuffledLabels())
		require.NoError(t, err)
		dec, err := centroid.Build(tr)
		require.NoError(t, err)

		for a := 0; a < tr.VertexCount(); a++ {
			ref, err := converters.Distances(tr, a)
			require.NoError(t, err)
			for b, want := range ref {
				got, err := dec.Dist(a, b)
				require.NoError(t, err)
				require.Equal(t, want, got, "seed %d: Dist(%d,%d)", seed, a, b)
			}
		}
	}
}

func TestDistances_Errors(t *testing.T) {
	tr, err := builder.BuildTree(builder.Path(3))
	require.NoError(t, err)

	_, err = converters.Distances(tr, 3)
	assert.ErrorIs(t, err, tree.ErrVertexOutOfRange)
	_, err = converters.Distances(nil, 0)
	assert.ErrorIs(t, err, converters.ErrNilGraph)

	// vertices of an unfinished tree are unreachable, not an error
	partial, err := tree.New(3)
	require.NoError(t, err)
	require.NoError(t, partial.AddEdge(0, 1))
	d, err := converters.Distances(partial, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, -1}, d)
}
