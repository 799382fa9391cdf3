package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voronoi-steiner/stpg/core"
)

func buildPathTree(t *testing.T) *core.Tree {
	t.Helper()
	tr := core.NewTree()
	tr.AddEdge(core.Edge{ID: 0, U: 1, V: 2, Weight: 1})
	tr.AddEdge(core.Edge{ID: 1, U: 2, V: 3, Weight: 1})
	tr.AddEdge(core.Edge{ID: 2, U: 3, V: 4, Weight: 1})
	return tr
}

func TestTreeAddRemoveEdge(t *testing.T) {
	tr := buildPathTree(t)
	assert.Equal(t, []int{1, 2, 3, 4}, tr.Members())
	assert.Equal(t, int64(3), tr.Weight())

	e, ok := tr.EdgeBetween(2, 3)
	require.True(t, ok)
	assert.Equal(t, int64(1), e.Weight)

	tr.RemoveEdge(1)
	_, ok = tr.EdgeBetween(2, 3)
	assert.False(t, ok)
	// both endpoints remain members even though disconnected
	assert.True(t, tr.HasVertex(2))
	assert.True(t, tr.HasVertex(3))
}

func TestTreeRemoveVertex(t *testing.T) {
	tr := buildPathTree(t)
	tr.RemoveVertex(2)
	assert.False(t, tr.HasVertex(2))
	// vertex 1 loses its only edge; vertex 3 keeps its edge to 4
	assert.Equal(t, 1, tr.Degree(3)+tr.Degree(1))
}

func TestTreeCloneIsIndependent(t *testing.T) {
	tr := buildPathTree(t)
	clone := tr.Clone()
	clone.RemoveVertex(3)

	assert.True(t, tr.HasVertex(3))
	assert.False(t, clone.HasVertex(3))
}

func TestTreePathBetween(t *testing.T) {
	tr := buildPathTree(t)
	path := tr.PathBetween(1, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, path)

	assert.Equal(t, []int{1}, tr.PathBetween(1, 1))
}

func TestTreeLeaves(t *testing.T) {
	tr := buildPathTree(t)
	assert.Equal(t, []int{1, 4}, tr.Leaves())
}

func TestTreeComponentsAfterSplit(t *testing.T) {
	tr := buildPathTree(t)
	tr.RemoveEdge(1) // splits 1-2 from 3-4
	comps := tr.Components()
	require.Len(t, comps, 2)
	assert.Equal(t, []int{1, 2}, comps[0])
	assert.Equal(t, []int{3, 4}, comps[1])
}

func TestNewTreeFromEdges(t *testing.T) {
	tr := core.NewTreeFromEdges([]core.Edge{
		{ID: 0, U: 0, V: 1, Weight: 2},
		{ID: 1, U: 1, V: 2, Weight: 3},
	})
	assert.Equal(t, int64(5), tr.Weight())
	assert.Equal(t, []int{0, 1, 2}, tr.Members())
}

func TestNewSingletonTree(t *testing.T) {
	tr := core.NewSingletonTree(7)
	assert.Equal(t, []int{7}, tr.Members())
	assert.Equal(t, int64(0), tr.Weight())
	assert.Equal(t, 0, tr.Degree(7))
}
