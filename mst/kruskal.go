// Package mst computes minimum spanning trees via Kruskal's algorithm,
// generically over anything that looks like a weighted edge — core.Edge for
// re-MST moves on the main graph, auxgraph.Edge for the Distance Network
// Heuristic's auxiliary graph.
package mst

import (
	"errors"
	"sort"
)

// ErrDisconnected indicates the supplied vertex set cannot be spanned by the
// supplied edges.
var ErrDisconnected = errors.New("mst: vertex set is disconnected")

// WeightedEdge is the minimal shape Kruskal needs: its endpoints and weight.
type WeightedEdge interface {
	Endpoints() (int, int)
	EdgeWeight() int64
}

// Kruskal computes the minimum spanning tree over the given vertex set using
// only the supplied candidate edges (edges with an endpoint outside
// vertices are simply never selected). Ties in weight break by the order
// edges appear in the input slice, so callers that need determinism should
// pass edges in a stable, reproducible order (e.g. core.Graph.Edges()).
//
// Returns ErrDisconnected if vertices cannot be fully spanned.
func Kruskal[E WeightedEdge](vertices []int, edges []E) ([]E, int64, error) {
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return nil, 0, nil
	}

	parent := make(map[int]int, len(vertices))
	rank := make(map[int]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}

	var find func(int) int
	find = func(v int) int {
		for parent[v] != v {
			parent[v] = parent[parent[v]]
			v = parent[v]
		}
		return v
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	sorted := make([]E, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EdgeWeight() < sorted[j].EdgeWeight()
	})

	var out []E
	var total int64
	need := len(vertices) - 1
	for _, e := range sorted {
		u, v := e.Endpoints()
		if _, ok := parent[u]; !ok {
			continue
		}
		if _, ok := parent[v]; !ok {
			continue
		}
		if find(u) != find(v) {
			union(u, v)
			out = append(out, e)
			total += e.EdgeWeight()
			if len(out) == need {
				break
			}
		}
	}
	if len(out) != need {
		return nil, 0, ErrDisconnected
	}
	return out, total, nil
}
