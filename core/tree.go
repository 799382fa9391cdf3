package core

import "sort"

// Tree is a mutable edge set inducing a connected, acyclic subgraph of some
// Graph — the representation used for a candidate Steiner solution S while
// the local-search engine explores moves. Unlike Graph, Tree is not
// immutable: AddEdge/RemoveEdge/RemoveVertex mutate it in place, mirroring
// how the source repeatedly copies and edits a working solution per move.
type Tree struct {
	members map[int]bool
	adj     map[int]map[int]int // vertex -> neighbor -> edge id
	edges   map[int]Edge        // edge id -> edge
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{
		members: make(map[int]bool),
		adj:     make(map[int]map[int]int),
		edges:   make(map[int]Edge),
	}
}

// NewSingletonTree returns a one-vertex, zero-edge tree — the starting
// solution when |T|=1.
func NewSingletonTree(v int) *Tree {
	t := NewTree()
	t.members[v] = true
	t.adj[v] = make(map[int]int)
	return t
}

// NewTreeFromEdges builds a tree from a caller-supplied edge set. The edges
// must already induce a connected, acyclic subgraph; callers (mst.Kruskal,
// startsol) are responsible for that guarantee.
func NewTreeFromEdges(edges []Edge) *Tree {
	t := NewTree()
	for _, e := range edges {
		t.AddEdge(e)
	}
	return t
}

// HasVertex reports whether v is in V_S.
func (t *Tree) HasVertex(v int) bool { return t.members[v] }

// Members returns V_S in ascending vertex-id order.
func (t *Tree) Members() []int {
	out := make([]int, 0, len(t.members))
	for v := range t.members {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// MemberSet returns a fresh map suitable for set-membership tests (e.g.
// core.EdgeBoundary), so callers cannot mutate the tree's own bookkeeping.
func (t *Tree) MemberSet() map[int]bool {
	out := make(map[int]bool, len(t.members))
	for v := range t.members {
		out[v] = true
	}
	return out
}

// Degree returns deg_S(v).
func (t *Tree) Degree(v int) int { return len(t.adj[v]) }

// EdgeBetween returns the tree edge directly connecting u and v, if they are
// adjacent in S.
func (t *Tree) EdgeBetween(u, v int) (Edge, bool) {
	id, ok := t.adj[u][v]
	if !ok {
		return Edge{}, false
	}
	return t.edges[id], true
}

// Neighbors returns v's tree-neighbors in ascending order.
func (t *Tree) Neighbors(v int) []int {
	nbs := t.adj[v]
	out := make([]int, 0, len(nbs))
	for w := range nbs {
		out = append(out, w)
	}
	sort.Ints(out)
	return out
}

// Edges returns the tree's edges sorted by ID ascending.
func (t *Tree) Edges() []Edge {
	out := make([]Edge, 0, len(t.edges))
	for _, e := range t.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Weight returns weight(S) = sum of edge weights.
func (t *Tree) Weight() int64 {
	var w int64
	for _, e := range t.edges {
		w += e.Weight
	}
	return w
}

// AddEdge inserts e, adding both endpoints to V_S if necessary.
func (t *Tree) AddEdge(e Edge) {
	if t.adj[e.U] == nil {
		t.adj[e.U] = make(map[int]int)
		t.members[e.U] = true
	}
	if t.adj[e.V] == nil {
		t.adj[e.V] = make(map[int]int)
		t.members[e.V] = true
	}
	t.adj[e.U][e.V] = e.ID
	t.adj[e.V][e.U] = e.ID
	t.edges[e.ID] = e
}

// RemoveEdge deletes the edge with the given id, disconnecting its two
// endpoints from each other (but leaving both vertices in V_S even if one
// becomes isolated — callers that mean to drop a vertex call RemoveVertex).
func (t *Tree) RemoveEdge(id int) {
	e, ok := t.edges[id]
	if !ok {
		return
	}
	delete(t.adj[e.U], e.V)
	delete(t.adj[e.V], e.U)
	delete(t.edges, id)
}

// RemoveVertex deletes v and every edge incident to it.
func (t *Tree) RemoveVertex(v int) {
	for w, id := range t.adj[v] {
		delete(t.adj[w], v)
		delete(t.edges, id)
	}
	delete(t.adj, v)
	delete(t.members, v)
}

// Clone returns an independent deep copy.
func (t *Tree) Clone() *Tree {
	out := NewTree()
	for v := range t.members {
		out.members[v] = true
	}
	for v, nbs := range t.adj {
		m := make(map[int]int, len(nbs))
		for w, id := range nbs {
			m[w] = id
		}
		out.adj[v] = m
	}
	for id, e := range t.edges {
		out.edges[id] = e
	}
	return out
}

// PathBetween returns the unique simple path from u to v in the tree, as an
// ordered vertex sequence starting at u, via BFS (S is acyclic, so any
// traversal finds the unique path).
func (t *Tree) PathBetween(u, v int) []int {
	if u == v {
		return []int{u}
	}
	parent := map[int]int{u: u}
	queue := []int{u}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == v {
			break
		}
		for _, w := range t.Neighbors(cur) {
			if _, seen := parent[w]; !seen {
				parent[w] = cur
				queue = append(queue, w)
			}
		}
	}
	if _, ok := parent[v]; !ok {
		return nil
	}
	var path []int
	for cur := v; ; cur = parent[cur] {
		path = append(path, cur)
		if cur == u {
			break
		}
	}
	// path was built backwards from v to u; reverse it.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Leaves returns the degree-<=1 vertices of the tree (degree 0 only for the
// singleton case).
func (t *Tree) Leaves() []int {
	var out []int
	for _, v := range t.Members() {
		if t.Degree(v) <= 1 {
			out = append(out, v)
		}
	}
	return out
}

// Components splits the tree's vertex set into its connected components
// (used by voronoi.Repair after a key path's edges and interior vertices
// have been removed, which always yields exactly two components).
func (t *Tree) Components() [][]int {
	seen := make(map[int]bool, len(t.members))
	var comps [][]int
	for _, root := range t.Members() {
		if seen[root] {
			continue
		}
		var comp []int
		queue := []int{root}
		seen[root] = true
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			comp = append(comp, v)
			for _, w := range t.Neighbors(v) {
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	return comps
}
