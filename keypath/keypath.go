// Package keypath implements the key-path decomposition of a Steiner tree
// and the key-path exchange neighborhood: replacing a maximal path between
// crucial vertices with a cheaper reconnection found via a Voronoi diagram
// over the current solution and its repair after the path is removed.
package keypath

import (
	"sort"

	"github.com/voronoi-steiner/stpg/core"
	"github.com/voronoi-steiner/stpg/treeops"
	"github.com/voronoi-steiner/stpg/voronoi"
)

// FindKeyPaths partitions E(S) into key paths: maximal simple paths whose
// endpoints are in crucial and whose interior vertices are not. It works by
// repeatedly peeling leaves from a working copy of s — each leaf is in
// crucial by construction — walking the unique pendant chain until the next
// crucial vertex is reached, recording the traversed vertices as one key
// path.
func FindKeyPaths(s *core.Tree, crucial map[int]bool) [][]int {
	t := s.Clone()
	var keyPaths [][]int

	for len(t.Edges()) > 0 {
		leaves := t.Leaves()
		sort.Ints(leaves)
		for _, v := range leaves {
			if t.Degree(v) != 1 {
				continue // consumed by an earlier leaf's walk this round
			}
			path := []int{v}
			cur := v
			for {
				nbs := t.Neighbors(cur)
				if len(nbs) == 0 {
					// last vertex in the tree; end the outer loop via the
					// edge-count check above.
					break
				}
				next := nbs[0]
				t.RemoveVertex(cur)
				path = append(path, next)
				cur = next
				if crucial[next] {
					break
				}
			}
			keyPaths = append(keyPaths, path)
		}
	}

	return keyPaths
}

// ReplacePath removes oldPath's edges and interior vertices from s and
// splices in newPath's edges (with weights looked up from g), returning the
// resulting tree. s is not mutated; a clone is returned.
func ReplacePath(g *core.Graph, s *core.Tree, oldPath, newPath []int) *core.Tree {
	out := s.Clone()
	for i := 0; i+1 < len(oldPath); i++ {
		if e, ok := out.EdgeBetween(oldPath[i], oldPath[i+1]); ok {
			out.RemoveEdge(e.ID)
		}
	}
	if len(oldPath) > 2 {
		for _, v := range oldPath[1 : len(oldPath)-1] {
			out.RemoveVertex(v)
		}
	}
	for i := 0; i+1 < len(newPath); i++ {
		if e, ok := g.EdgeBetween(newPath[i], newPath[i+1]); ok {
			out.AddEdge(e)
		}
	}
	return out
}

// candidate records the best improving exchange found so far while
// scanning key paths.
type candidate struct {
	diff    int64
	oldPath []int
	newPath []int
}

// Exchange implements key-path exchange: for every key path P, it computes
// whether the two components left after conceptually removing P can be
// reconnected more cheaply via some boundary edge. With earlyStop, the
// first improving key path is applied immediately; otherwise the best
// improvement across all key paths is applied.
func Exchange(g *core.Graph, s *core.Tree, terminals map[int]bool, earlyStop bool) *core.Tree {
	crucial := treeops.CrucialVertices(s, terminals)
	keyPaths := FindKeyPaths(s, crucial)
	if len(keyPaths) == 0 {
		return s
	}

	d, err := voronoi.Build(g, s.Members())
	if err != nil {
		return s
	}

	var best *candidate

	for _, kp := range keyPaths {
		var pathWeight int64
		for i := 0; i+1 < len(kp); i++ {
			if e, ok := s.EdgeBetween(kp[i], kp[i+1]); ok {
				pathWeight += e.Weight
			}
		}

		temp := d.Copy()
		s1, s2 := temp.Repair(g, s, kp)

		boundary := core.EdgeBoundary(g, s1, s2)
		if len(boundary) == 0 {
			continue
		}

		var bestEdge core.Edge
		bestCost := int64(-1)
		for _, be := range boundary {
			cost := temp.BoundaryEdgeCost(be.U, be.V, be.Weight)
			if bestCost == -1 || cost < bestCost || (cost == bestCost && be.ID < bestEdge.ID) {
				bestCost, bestEdge = cost, be
			}
		}

		if bestCost < pathWeight {
			diff := pathWeight - bestCost
			if best == nil || diff > best.diff {
				newPath := temp.BasePath(bestEdge.U, bestEdge.V)
				best = &candidate{diff: diff, oldPath: kp, newPath: newPath}
			}
			if earlyStop {
				break
			}
		}
	}

	if best == nil {
		return s
	}
	return ReplacePath(g, s, best.oldPath, best.newPath)
}
