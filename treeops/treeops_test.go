package treeops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voronoi-steiner/stpg/core"
	"github.com/voronoi-steiner/stpg/treeops"
)

// buildPath builds a 0-1-2-3-4 path tree with unit weights.
func buildPath(t *testing.T) *core.Tree {
	t.Helper()
	tr := core.NewTree()
	for i := 0; i < 4; i++ {
		tr.AddEdge(core.Edge{ID: i, U: i, V: i + 1, Weight: 1})
	}
	return tr
}

func TestPruneTreeRemovesNonTerminalLeaves(t *testing.T) {
	tr := buildPath(t)
	terminals := map[int]bool{0: true, 2: true}

	out := treeops.PruneTree(tr, terminals)

	assert.ElementsMatch(t, []int{0, 1, 2}, out.Members())
	assert.Equal(t, int64(2), treeops.Weight(out))
}

func TestPruneTreeIdempotent(t *testing.T) {
	tr := buildPath(t)
	terminals := map[int]bool{0: true, 4: true}

	first := treeops.PruneTree(tr, terminals).Members()
	second := treeops.PruneTree(tr, terminals).Members()

	assert.Equal(t, first, second)
}

func TestPruneTreeSingleton(t *testing.T) {
	tr := core.NewSingletonTree(7)
	out := treeops.PruneTree(tr, map[int]bool{7: true})
	require.Len(t, out.Members(), 1)
	assert.Equal(t, 7, out.Members()[0])
}

func TestCrucialAndKeyVertices(t *testing.T) {
	// star: center 0 connects to 1,2,3 (degree 3); terminals = {1,2,3}
	tr := core.NewTree()
	tr.AddEdge(core.Edge{ID: 0, U: 0, V: 1, Weight: 1})
	tr.AddEdge(core.Edge{ID: 1, U: 0, V: 2, Weight: 1})
	tr.AddEdge(core.Edge{ID: 2, U: 0, V: 3, Weight: 1})
	terminals := map[int]bool{1: true, 2: true, 3: true}

	crucial := treeops.CrucialVertices(tr, terminals)
	assert.True(t, crucial[0]) // degree 3
	assert.True(t, crucial[1])
	assert.True(t, crucial[2])
	assert.True(t, crucial[3])

	key := treeops.KeyVertices(tr, terminals)
	assert.True(t, key[0])
	assert.False(t, key[1])
}
