// Package treeops implements the tree-level utilities shared by every local
// search neighborhood: pruning a candidate solution back to a valid Steiner
// tree, computing its weight, and classifying vertices into the crucial/key
// sets the key-path and key-vertex neighborhoods operate on.
package treeops

import "github.com/voronoi-steiner/stpg/core"

// PruneTree iteratively strips non-terminal leaves from t until every
// remaining leaf is a terminal. t is mutated in place and also returned for
// chaining. A tree that is already pruned is returned unchanged (R2).
func PruneTree(t *core.Tree, terminals map[int]bool) *core.Tree {
	for {
		removed := false
		for _, v := range t.Members() {
			if t.Degree(v) == 1 && !terminals[v] {
				t.RemoveVertex(v)
				removed = true
			}
		}
		if !removed {
			break
		}
	}
	return t
}

// Weight returns the total edge weight of t.
func Weight(t *core.Tree) int64 { return t.Weight() }

// CrucialVertices returns C(S) = { v in V_S : deg_S(v) >= 3 or v in T }.
func CrucialVertices(t *core.Tree, terminals map[int]bool) map[int]bool {
	out := make(map[int]bool)
	for _, v := range t.Members() {
		if t.Degree(v) >= 3 || terminals[v] {
			out[v] = true
		}
	}
	return out
}

// KeyVertices returns K = { v in V_S : deg_S(v) >= 3 and v not in T }, the
// non-terminal branching vertices the key-vertex neighborhood considers for
// elimination.
func KeyVertices(t *core.Tree, terminals map[int]bool) map[int]bool {
	out := make(map[int]bool)
	for _, v := range t.Members() {
		if t.Degree(v) >= 3 && !terminals[v] {
			out[v] = true
		}
	}
	return out
}
