// Package keyvertex implements the key-vertex elimination neighborhood:
// removing a branching Steiner vertex from the crucial set and
// reconstructing a solution over the reduced set via the Distance Network
// Heuristic.
package keyvertex

import (
	"sort"

	"github.com/voronoi-steiner/stpg/auxgraph"
	"github.com/voronoi-steiner/stpg/core"
	"github.com/voronoi-steiner/stpg/treeops"
)

// Eliminate considers removing each key vertex v (a non-terminal tree
// vertex of degree >= 3) from the crucial set and reconstructing a
// candidate solution via DNH over the reduced set unioned with the
// terminals. With earlyStop, the first improving removal is accepted
// immediately; otherwise the best improvement across all key vertices is
// applied.
func Eliminate(g *core.Graph, s *core.Tree, terminals map[int]bool, earlyStop bool) *core.Tree {
	keyVertices := treeops.KeyVertices(s, terminals)
	if len(keyVertices) == 0 {
		return s
	}

	sWeight := s.Weight()
	var best *core.Tree
	bestDiff := int64(0)

	for _, v := range sortedKeys(keyVertices) {
		var reduced []int
		for k := range keyVertices {
			if k != v {
				reduced = append(reduced, k)
			}
		}
		for t := range terminals {
			reduced = append(reduced, t)
		}

		candidate, err := auxgraph.DNH(g, reduced)
		if err != nil {
			continue
		}
		candidate = treeops.PruneTree(candidate, terminals)
		candidateWeight := candidate.Weight()

		if candidateWeight < sWeight {
			if earlyStop {
				return candidate
			}
			diff := sWeight - candidateWeight
			if best == nil || diff > bestDiff {
				best, bestDiff = candidate, diff
			}
		}
	}

	if best == nil {
		return s
	}
	return best
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
