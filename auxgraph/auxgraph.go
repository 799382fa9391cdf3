// Package auxgraph builds the auxiliary distance graph over a Voronoi
// diagram's bases and implements the Distance Network Heuristic (DNH), the
// 2-approximation constructive algorithm the key-vertex neighborhood and the
// starting-solution selector both depend on.
package auxgraph

import (
	"sort"

	"github.com/voronoi-steiner/stpg/core"
	"github.com/voronoi-steiner/stpg/mst"
	"github.com/voronoi-steiner/stpg/voronoi"
)

// Edge is one edge of the auxiliary graph: a minimum-cost connection between
// two Voronoi bases, together with the G-boundary edge that realizes it.
type Edge struct {
	BaseU, BaseV   int
	Cost           int64
	BoundaryU      int
	BoundaryV      int
}

// Endpoints satisfies mst.WeightedEdge.
func (e Edge) Endpoints() (int, int) { return e.BaseU, e.BaseV }

// EdgeWeight satisfies mst.WeightedEdge.
func (e Edge) EdgeWeight() int64 { return e.Cost }

// Build constructs the auxiliary graph of g with respect to d: one node per
// base, and for each pair of bases connected by at least one G-boundary
// edge, the single cheapest such edge (dist(u)+w(u,v)+dist(v)).
func Build(g *core.Graph, d *voronoi.Diagram) []Edge {
	type key struct{ a, b int }
	best := make(map[key]*Edge)

	for _, e := range g.Edges() {
		bu, bv := d.Base(e.U), d.Base(e.V)
		if bu == bv {
			continue
		}
		a, b, boundaryU, boundaryV := bu, bv, e.U, e.V
		if a > b {
			a, b = b, a
		}
		cost := d.BoundaryEdgeCost(e.U, e.V, e.Weight)
		k := key{a, b}
		if cur, ok := best[k]; !ok || cost < cur.Cost {
			best[k] = &Edge{BaseU: bu, BaseV: bv, Cost: cost, BoundaryU: boundaryU, BoundaryV: boundaryV}
		}
	}

	out := make([]Edge, 0, len(best))
	for _, e := range best {
		out = append(out, *e)
	}
	// best is keyed by a map, so its iteration order is not reproducible;
	// fix a deterministic order before handing the edges to Kruskal.
	sort.Slice(out, func(i, j int) bool {
		if out[i].BaseU != out[j].BaseU {
			return out[i].BaseU < out[j].BaseU
		}
		return out[i].BaseV < out[j].BaseV
	})
	return out
}

// DNH computes the Distance Network Heuristic's Steiner-tree approximation
// over the base set bases: build the Voronoi diagram, build the auxiliary
// graph, MST it, then expand every MST edge back to its G-path. The unioned
// path edges are passed through a second MST pass so the result is
// guaranteed to be a tree (the union of overlapping shortest paths between
// different base pairs can otherwise close a cycle) rather than merely
// connected; this can only discard redundant edges, so the 2-approximation
// bound is preserved. A single base collapses the aux graph to one node with
// no edges, so there is no path to expand; that case returns the base's
// singleton tree directly rather than falling through to an empty one.
func DNH(g *core.Graph, bases []int) (*core.Tree, error) {
	d, err := voronoi.Build(g, bases)
	if err != nil {
		return nil, err
	}
	aux := Build(g, d)

	auxVertices := make([]int, 0, len(bases))
	seen := make(map[int]bool, len(bases))
	for _, b := range bases {
		if !seen[b] {
			seen[b] = true
			auxVertices = append(auxVertices, b)
		}
	}

	if len(auxVertices) == 1 {
		return core.NewSingletonTree(auxVertices[0]), nil
	}

	mstEdges, _, err := mst.Kruskal(auxVertices, aux)
	if err != nil {
		return nil, err
	}

	seenEdge := make(map[int]bool)
	var treeEdges []core.Edge
	for _, e := range mstEdges {
		path := d.BasePath(e.BoundaryU, e.BoundaryV)
		for i := 0; i+1 < len(path); i++ {
			ge, ok := g.EdgeBetween(path[i], path[i+1])
			if !ok {
				continue
			}
			if !seenEdge[ge.ID] {
				seenEdge[ge.ID] = true
				treeEdges = append(treeEdges, ge)
			}
		}
	}

	spanVertices := make(map[int]bool, len(treeEdges))
	for _, e := range treeEdges {
		spanVertices[e.U] = true
		spanVertices[e.V] = true
	}
	vertexList := make([]int, 0, len(spanVertices))
	for v := range spanVertices {
		vertexList = append(vertexList, v)
	}
	sort.Ints(vertexList)

	if len(vertexList) <= 1 {
		if len(vertexList) == 1 {
			return core.NewSingletonTree(vertexList[0]), nil
		}
		return core.NewTree(), nil
	}

	finalEdges, _, err := mst.Kruskal(vertexList, treeEdges)
	if err != nil {
		return nil, err
	}
	return core.NewTreeFromEdges(finalEdges), nil
}
