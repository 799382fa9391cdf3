package voronoi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voronoi-steiner/stpg/core"
	"github.com/voronoi-steiner/stpg/voronoi"
)

// buildFan builds 0-1-2-3-4 path plus 0-4 shortcut:
// 0--1 (1), 1--2 (1), 2--3 (1), 3--4 (1), 0--4 (10)
func buildFan(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder(5)
	_, err := b.AddEdge(0, 1, 1)
	require.NoError(t, err)
	_, err = b.AddEdge(1, 2, 1)
	require.NoError(t, err)
	_, err = b.AddEdge(2, 3, 1)
	require.NoError(t, err)
	_, err = b.AddEdge(3, 4, 1)
	require.NoError(t, err)
	_, err = b.AddEdge(0, 4, 10)
	require.NoError(t, err)
	g, err := b.Freeze()
	require.NoError(t, err)
	return g
}

func TestBuildAssignsNearestBase(t *testing.T) {
	g := buildFan(t)
	d, err := voronoi.Build(g, []int{0, 4})
	require.NoError(t, err)

	assert.Equal(t, 0, d.Base(0))
	assert.Equal(t, 4, d.Base(4))
	assert.Equal(t, 0, d.Base(1))
	assert.Equal(t, 4, d.Base(3))
	// vertex 2 is equidistant (dist 2 from both 0 and 4); tie-break picks
	// the lowest base id under our fixed ascending-id heap ordering.
	assert.Equal(t, 0, d.Base(2))
}

func TestBasePathConnectsBases(t *testing.T) {
	g := buildFan(t)
	d, err := voronoi.Build(g, []int{0, 4})
	require.NoError(t, err)

	path := d.BasePath(1, 3)
	assert.Equal(t, []int{0, 1, 3, 4}, path)
}

func TestCopyIsIndependent(t *testing.T) {
	g := buildFan(t)
	d, err := voronoi.Build(g, []int{0, 4})
	require.NoError(t, err)

	cp := d.Copy()
	cp.Repair(g, core.NewTreeFromEdges(g.Edges()[:4]), []int{0, 1, 2, 3, 4})

	// original diagram base assignments must be unaffected by repairing the copy
	assert.Equal(t, 0, d.Base(0))
	assert.Equal(t, 4, d.Base(4))
}

func TestRepairPartitionsAllVertices(t *testing.T) {
	g := buildFan(t)
	// S = the 0-1-2-3-4 path (excluding the 0-4 shortcut)
	s := core.NewTreeFromEdges(g.Edges()[:4])
	d, err := voronoi.Build(g, s.Members())
	require.NoError(t, err)

	s1, s2 := d.Repair(g, s, []int{0, 1, 2, 3, 4})

	total := len(s1) + len(s2)
	assert.Equal(t, g.NumVertices(), total)
	assert.True(t, s1[0])
	assert.True(t, s2[4])
	for v := 0; v < g.NumVertices(); v++ {
		assert.True(t, s1[v] || s2[v])
		assert.False(t, s1[v] && s2[v])
	}
}
