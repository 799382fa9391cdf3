// Package steinerv implements the Steiner-vertex neighborhoods: inserting an
// out-of-tree vertex into the solution and eliminating a non-terminal
// tree vertex, both followed by pruning back to a valid Steiner tree.
package steinerv

import (
	"sort"

	"github.com/voronoi-steiner/stpg/core"
	"github.com/voronoi-steiner/stpg/mst"
	"github.com/voronoi-steiner/stpg/treeops"
)

// TryInsertEdge attempts to splice edge e=(u,v) into tree s.
// Let P be the unique u-v path already in s; if the heaviest edge on P is
// strictly heavier than e.Weight, that edge is replaced by e. s is mutated in
// place. Ties among equally-heavy path edges break by the first one
// encountered walking the path from u to v.
func TryInsertEdge(s *core.Tree, e core.Edge) {
	path := s.PathBetween(e.U, e.V)
	if len(path) < 2 {
		return
	}
	var heaviest core.Edge
	found := false
	for i := 0; i+1 < len(path); i++ {
		pe, ok := s.EdgeBetween(path[i], path[i+1])
		if !ok {
			continue
		}
		if !found || pe.Weight > heaviest.Weight {
			heaviest, found = pe, true
		}
	}
	if found && heaviest.Weight > e.Weight {
		s.RemoveEdge(heaviest.ID)
		s.AddEdge(e)
	}
}

// Insert implements the Steiner-vertex insertion move. For each out-of-tree
// vertex v (ascending id), the edges connecting v to the current tree are
// added one at a time — the first unconditionally, the rest via
// TryInsertEdge — and the resulting tree is kept if it is cheaper. With
// earlyStop, the first improving vertex ends the scan immediately;
// otherwise the scan is chained first-improvement: each accepted
// improvement becomes the new baseline for evaluating the remaining
// candidates.
func Insert(g *core.Graph, s *core.Tree, terminals map[int]bool, earlyStop bool) *core.Tree {
	inTree := s.MemberSet()
	var available []int
	for _, v := range g.Vertices() {
		if !inTree[v] {
			available = append(available, v)
		}
	}
	if len(available) == 0 {
		return s
	}

	sWeight := s.Weight()

	for _, v := range available {
		members := s.MemberSet()
		var connecting []core.Edge
		for _, nb := range g.Neighbors(v) {
			if members[nb.To] {
				ge, ok := g.EdgeBetween(v, nb.To)
				if ok {
					connecting = append(connecting, ge)
				}
			}
		}
		if len(connecting) == 0 {
			continue
		}
		sort.Slice(connecting, func(i, j int) bool {
			return connecting[i].Other(v) < connecting[j].Other(v)
		})

		candidate := s.Clone()
		for i, e := range connecting {
			if i == 0 {
				candidate.AddEdge(e)
			} else {
				TryInsertEdge(candidate, e)
			}
		}

		candidateWeight := candidate.Weight()
		if candidateWeight < sWeight {
			sWeight = candidateWeight
			s = candidate
			if earlyStop {
				break
			}
		}
	}

	return treeops.PruneTree(s, terminals)
}

// Eliminate implements the Steiner-vertex elimination move. For each
// non-terminal tree vertex v (ascending id), G[V_S \ {v}] is re-MSTed; if
// the result is cheaper and connected, it is accepted. earlyStop semantics
// mirror Insert.
func Eliminate(g *core.Graph, s *core.Tree, terminals map[int]bool, earlyStop bool) *core.Tree {
	var candidates []int
	for _, v := range s.Members() {
		if !terminals[v] {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return treeops.PruneTree(s, terminals)
	}

	sWeight := s.Weight()

	for _, v := range candidates {
		remaining := make([]int, 0, len(s.Members())-1)
		for _, w := range s.Members() {
			if w != v {
				remaining = append(remaining, w)
			}
		}
		if len(remaining) == 0 {
			continue
		}

		remainingSet := make(map[int]bool, len(remaining))
		for _, w := range remaining {
			remainingSet[w] = true
		}
		var inducedEdges []core.Edge
		for _, e := range g.Edges() {
			if remainingSet[e.U] && remainingSet[e.V] {
				inducedEdges = append(inducedEdges, e)
			}
		}

		mstEdges, weight, err := mst.Kruskal(remaining, inducedEdges)
		if err != nil {
			continue // induced subgraph disconnected; skip this candidate
		}

		if weight < sWeight {
			newS := core.NewTreeFromEdges(mstEdges)
			if earlyStop {
				return treeops.PruneTree(newS, terminals)
			}
			sWeight = weight
			s = newS
		}
	}

	return treeops.PruneTree(s, terminals)
}
