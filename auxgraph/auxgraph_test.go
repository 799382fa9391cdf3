package auxgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voronoi-steiner/stpg/auxgraph"
	"github.com/voronoi-steiner/stpg/core"
)

// buildTriangle: V={0,1,2,3}; edges (0,1,10),(1,2,10),(0,2,10),(0,3,1),(1,3,1),(2,3,1)
// a triangle of terminals with a cheap hub vertex, 0-indexed.
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder(4)
	for _, e := range []struct{ u, v int; w int64 }{
		{0, 1, 10}, {1, 2, 10}, {0, 2, 10},
		{0, 3, 1}, {1, 3, 1}, {2, 3, 1},
	} {
		_, err := b.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}
	g, err := b.Freeze()
	require.NoError(t, err)
	return g
}

func TestDNHSpansTerminalsWithinBound(t *testing.T) {
	g := buildTriangle(t)
	terminals := []int{0, 1, 2}

	tree, err := auxgraph.DNH(g, terminals)
	require.NoError(t, err)

	for _, term := range terminals {
		assert.True(t, tree.HasVertex(term))
	}
	// optimal Steiner tree here is the star through vertex 3, weight 3;
	// DNH's 2-approximation bound permits up to 2*(1-1/3)*OPT = 4.
	assert.LessOrEqual(t, tree.Weight(), int64(4))
}

func TestDNHReturnsTree(t *testing.T) {
	g := buildTriangle(t)
	tree, err := auxgraph.DNH(g, []int{0, 1, 2})
	require.NoError(t, err)
	// result must be a tree: edges = vertices - 1
	assert.Equal(t, len(tree.Members())-1, len(tree.Edges()))
}
