// Package voronoi implements a graph Voronoi diagram: a partition of every
// vertex of G into regions around a set of bases A, each vertex assigned to
// its nearest base under graph distance. The diagram is the shared
// bookkeeping structure behind both the auxiliary-graph/DNH construction and
// the key-path exchange neighborhood, which repairs a diagram after a key
// path is provisionally removed from the current solution.
package voronoi

import (
	"sort"

	"github.com/voronoi-steiner/stpg/core"
	"github.com/voronoi-steiner/stpg/dijkstra"
)

// Diagram holds, for every vertex v, its base, its distance from that base,
// and the shortest-path vertex sequence from the base to v.
type Diagram struct {
	base  []int
	dist  []int64
	paths [][]int
}

// Build runs multi-source Dijkstra from bases and returns the resulting
// diagram. bases must be non-empty.
func Build(g *core.Graph, bases []int) (*Diagram, error) {
	r, err := dijkstra.MultiSource(g, bases)
	if err != nil {
		return nil, err
	}
	n := g.NumVertices()
	d := &Diagram{
		base:  make([]int, n),
		dist:  make([]int64, n),
		paths: make([][]int, n),
	}
	for v := 0; v < n; v++ {
		d.base[v] = r.Base(v)
		d.dist[v] = r.Dist(v)
		d.paths[v] = r.Path(v)
	}
	return d, nil
}

// Base returns the base of v's cell.
func (d *Diagram) Base(v int) int { return d.base[v] }

// Dist returns the graph distance from base(v) to v.
func (d *Diagram) Dist(v int) int64 { return d.dist[v] }

// Path returns the shortest-path vertex sequence from base(v) to v.
func (d *Diagram) Path(v int) []int { return d.paths[v] }

// Cells returns base -> sorted vertex list for every vertex currently in the
// diagram.
func (d *Diagram) Cells() map[int][]int {
	out := make(map[int][]int)
	for v, b := range d.base {
		out[b] = append(out[b], v)
	}
	for b := range out {
		sort.Ints(out[b])
	}
	return out
}

// Copy returns an independent deep copy, so repair can mutate it without
// disturbing the diagram other candidate key paths are evaluated against.
func (d *Diagram) Copy() *Diagram {
	out := &Diagram{
		base:  append([]int(nil), d.base...),
		dist:  append([]int64(nil), d.dist...),
		paths: make([][]int, len(d.paths)),
	}
	for i, p := range d.paths {
		out.paths[i] = append([]int(nil), p...)
	}
	return out
}

// BoundaryEdgeCost returns dist(u) + w(u,v) + dist(v) for a boundary edge
// (u,v) — an edge whose endpoints have different bases.
func (d *Diagram) BoundaryEdgeCost(u, v int, weight int64) int64 {
	return d.dist[u] + weight + d.dist[v]
}

// BasePath returns the G-path connecting base(u) and base(v), given that
// (u,v) is a boundary edge: path(u) (base(u)..u) followed by the reverse of
// path(v) (v..base(v)), i.e. base(u) .. u, v .. base(v).
func (d *Diagram) BasePath(u, v int) []int {
	pu := d.paths[u]
	pv := d.paths[v]
	out := make([]int, 0, len(pu)+len(pv))
	out = append(out, pu...)
	for i := len(pv) - 1; i >= 0; i-- {
		out = append(out, pv[i])
	}
	return out
}

// Repair updates the diagram after keyPath's edges and interior vertices are
// conceptually removed from tree s, which splits s into exactly two
// components. It returns the two vertex sets partitioning all of G: the
// union of the cells whose base fell in each component, with vertices
// previously based on keyPath's interior reassigned to whichever component
// holds their nearest remaining base. Mutates the receiver in place —
// callers that need the pre-repair diagram for other candidates must Copy
// first.
func (d *Diagram) Repair(g *core.Graph, s *core.Tree, keyPath []int) (map[int]bool, map[int]bool) {
	interior := map[int]bool{}
	if len(keyPath) > 2 {
		for _, v := range keyPath[1 : len(keyPath)-1] {
			interior[v] = true
		}
	}

	trimmed := s.Clone()
	for i := 0; i+1 < len(keyPath); i++ {
		if e, ok := trimmed.EdgeBetween(keyPath[i], keyPath[i+1]); ok {
			trimmed.RemoveEdge(e.ID)
		}
	}
	for v := range interior {
		trimmed.RemoveVertex(v)
	}

	// Removing a key path's edges (and any interior vertices) from a tree
	// always yields exactly two components, one holding each endpoint.
	comps := trimmed.Components()
	comp1, comp2 := comps[0], comps[1]

	s1 := map[int]bool{}
	s2 := map[int]bool{}
	cells := d.Cells()
	for _, v := range comp1 {
		for _, u := range cells[v] {
			s1[u] = true
		}
	}
	for _, v := range comp2 {
		for _, u := range cells[v] {
			s2[u] = true
		}
	}

	if len(interior) == 0 {
		return s1, s2
	}

	var unassigned []int
	for _, v := range sortedKeys(interior) {
		unassigned = append(unassigned, cells[v]...)
	}
	sort.Ints(unassigned)

	s1set := make(map[int]bool, len(comp1))
	for _, v := range comp1 {
		s1set[v] = true
	}

	for _, u := range unassigned {
		r, err := dijkstra.ShortestPaths(g, u)
		if err != nil {
			continue
		}
		var bestBase int
		bestDist := int64(-1)
		for _, v := range append(append([]int{}, comp1...), comp2...) {
			if !r.Reached(v) {
				continue
			}
			dv := r.Dist(v)
			if bestDist == -1 || dv < bestDist || (dv == bestDist && v < bestBase) {
				bestDist = dv
				bestBase = v
			}
		}
		d.base[u] = bestBase
		d.dist[u] = bestDist
		// r.Path(u->bestBase) starts at u; the diagram's path must start
		// at the base, so reverse it.
		fwd := r.Path(bestBase)
		rev := make([]int, len(fwd))
		for i, x := range fwd {
			rev[len(fwd)-1-i] = x
		}
		d.paths[u] = rev

		if s1set[bestBase] {
			s1[u] = true
		} else {
			s2[u] = true
		}
	}

	return s1, s2
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
