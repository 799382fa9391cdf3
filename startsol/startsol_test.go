package startsol_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voronoi-steiner/stpg/core"
	"github.com/voronoi-steiner/stpg/startsol"
)

func buildTriangle4(t *testing.T) (*core.Graph, map[int]bool) {
	t.Helper()
	b := core.NewBuilder(4)
	for _, e := range []struct {
		u, v int
		w    int64
	}{
		{0, 1, 10}, {1, 2, 10}, {0, 2, 10},
		{0, 3, 1}, {1, 3, 1}, {2, 3, 1},
	} {
		_, err := b.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}
	g, err := b.Freeze()
	require.NoError(t, err)
	return g, map[int]bool{0: true, 1: true, 2: true}
}

func TestBuildMST(t *testing.T) {
	g, terminals := buildTriangle4(t)
	tree, err := startsol.Build(startsol.MST, g, terminals)
	require.NoError(t, err)

	for term := range terminals {
		assert.True(t, tree.HasVertex(term))
	}
	assert.Equal(t, int64(3), tree.Weight())
}

func TestBuildDNH(t *testing.T) {
	g, terminals := buildTriangle4(t)
	tree, err := startsol.Build(startsol.DNH, g, terminals)
	require.NoError(t, err)

	for term := range terminals {
		assert.True(t, tree.HasVertex(term))
	}
}

func TestBuildDNHSingleTerminal(t *testing.T) {
	g, _ := buildTriangle4(t)
	terminals := map[int]bool{0: true}
	tree, err := startsol.Build(startsol.DNH, g, terminals)
	require.NoError(t, err)

	assert.True(t, tree.HasVertex(0))
	assert.Equal(t, []int{0}, tree.Members())
	assert.Equal(t, int64(0), tree.Weight())
}

func TestBuildUnknownAlgorithm(t *testing.T) {
	g, terminals := buildTriangle4(t)
	_, err := startsol.Build("bogus", g, terminals)
	assert.ErrorIs(t, err, startsol.ErrUnknownAlgorithm)
}

func TestLoadCache(t *testing.T) {
	g, _ := buildTriangle4(t)
	r := strings.NewReader("0 3 1\n1 3 1\n2 3 1\n")
	tree, err := startsol.Load(r, g)
	require.NoError(t, err)
	assert.Equal(t, int64(3), tree.Weight())
}

func TestLoadCacheRejectsUnknownEdge(t *testing.T) {
	g, _ := buildTriangle4(t)
	r := strings.NewReader("0 9 5\n")
	_, err := startsol.Load(r, g)
	assert.Error(t, err)
}
