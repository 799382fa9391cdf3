// Package dijkstra implements single- and multi-source shortest-path search
// over a core.Graph. Multi-source search is the primitive the voronoi
// package builds its diagrams from: sources are seeded at distance zero and
// the first vertex to settle each frontier position claims it as its base.
//
// Determinism: the priority queue breaks ties on equal distance by ascending
// vertex id, so repeated runs over the same graph and source set always
// settle vertices in the same order and report the same base/path for every
// equidistant vertex.
package dijkstra

import (
	"container/heap"
	"errors"
	"sort"

	"github.com/voronoi-steiner/stpg/core"
)

// ErrNoSources indicates Run was called with an empty source set.
var ErrNoSources = errors.New("dijkstra: no sources given")

// Result holds distances, bases, and predecessor links for a (possibly
// multi-source) Dijkstra run.
type Result struct {
	dist   []int64
	base   []int
	parent []int
}

const unreached = -1

// Dist returns the shortest distance from v's base to v, or -1 if v was
// never settled (unreachable from every source).
func (r *Result) Dist(v int) int64 {
	if r.base[v] == unreached {
		return -1
	}
	return r.dist[v]
}

// Base returns the source vertex whose region v belongs to.
func (r *Result) Base(v int) int { return r.base[v] }

// Reached reports whether v was settled.
func (r *Result) Reached(v int) bool { return r.base[v] != unreached }

// Path reconstructs the shortest-path vertex sequence from base(v) to v.
func (r *Result) Path(v int) []int {
	if r.base[v] == unreached {
		return nil
	}
	var rev []int
	for cur := v; ; cur = r.parent[cur] {
		rev = append(rev, cur)
		if cur == r.parent[cur] {
			break
		}
	}
	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}
	return path
}

// ShortestPaths runs single-source Dijkstra from source.
func ShortestPaths(g *core.Graph, source int) (*Result, error) {
	return MultiSource(g, []int{source})
}

// MultiSource runs Dijkstra seeded from every vertex in sources
// simultaneously (the construction behind voronoi.Build): each source
// starts at distance 0, and every other vertex is assigned to whichever
// source's frontier reaches it first.
func MultiSource(g *core.Graph, sources []int) (*Result, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	n := g.NumVertices()
	r := &Result{
		dist:   make([]int64, n),
		base:   make([]int, n),
		parent: make([]int, n),
	}
	for v := 0; v < n; v++ {
		r.base[v] = unreached
	}

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	// Push sources in ascending id order; the heap's tie-break makes the
	// push order irrelevant to the outcome, but a fixed order keeps runs
	// reproducible even if that ever changes.
	sorted := append([]int(nil), sources...)
	sort.Ints(sorted)
	for _, s := range sorted {
		if !g.HasVertex(s) {
			continue
		}
		if r.base[s] == unreached {
			r.base[s] = s
			r.parent[s] = s
			r.dist[s] = 0
			heap.Push(&pq, &nodeItem{id: s, dist: 0})
		}
	}

	settled := make([]bool, n)
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if settled[u] {
			continue
		}
		settled[u] = true

		for _, nb := range g.Neighbors(u) {
			newDist := r.dist[u] + nb.Weight
			if r.base[nb.To] == unreached || newDist < r.dist[nb.To] {
				r.dist[nb.To] = newDist
				r.base[nb.To] = r.base[u]
				r.parent[nb.To] = u
				heap.Push(&pq, &nodeItem{id: nb.To, dist: newDist})
			}
		}
	}

	return r, nil
}

// nodeItem is one priority-queue entry: a vertex and its currently-known
// tentative distance.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap ordered by (dist, id) ascending — the id tie-break is
// what makes multi-source runs deterministic.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
