package localsearch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voronoi-steiner/stpg/core"
	"github.com/voronoi-steiner/stpg/localsearch"
)

// buildTriangle4: spec Scenario 1, 0-indexed.
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

func TestRunConvergesToOptimum(t *testing.T) {
	g, terminals := buildTriangle4(t)

	s0 := core.NewTree()
	e01, _ := g.EdgeBetween(0, 1)
	e12, _ := g.EdgeBetween(1, 2)
	s0.AddEdge(e01)
	s0.AddEdge(e12)

	final, trace := localsearch.Run(context.Background(), g, s0, terminals, localsearch.WithMethod(localsearch.MethodSV))

	assert.Equal(t, int64(3), final.Weight())
	require.NotEmpty(t, trace.Weights)
	assert.Equal(t, s0.Weight(), trace.Weights[0])
	for i := 1; i < len(trace.Weights); i++ {
		assert.Less(t, trace.Weights[i], trace.Weights[i-1])
	}
	assert.Len(t, trace.EpochTimes, len(trace.Weights)-1)
}

func TestRunNoOpOnOptimalSolution(t *testing.T) {
	g, terminals := buildTriangle4(t)

	s0 := core.NewTree()
	for _, pair := range [][2]int{{0, 3}, {1, 3}, {2, 3}} {
		e, _ := g.EdgeBetween(pair[0], pair[1])
		s0.AddEdge(e)
	}
	require.Equal(t, int64(3), s0.Weight())

	final, trace := localsearch.Run(context.Background(), g, s0, terminals)

	assert.Equal(t, int64(3), final.Weight())
	assert.Len(t, trace.Weights, 1)
	assert.Empty(t, trace.EpochTimes)
}

func TestRunRespectsCancelledContext(t *testing.T) {
	g, terminals := buildTriangle4(t)
	s0 := core.NewTree()
	e01, _ := g.EdgeBetween(0, 1)
	s0.AddEdge(e01)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	final, trace := localsearch.Run(ctx, g, s0, terminals)
	assert.Equal(t, s0.Weight(), final.Weight())
	assert.Len(t, trace.Weights, 1)
}
