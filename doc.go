// Package stpg is a local-search engine for the Steiner Tree Problem in
// Graphs: given a connected, edge-weighted graph and a set of terminal
// vertices, it improves a feasible spanning tree by repeatedly exploring
// four neighborhoods until no move finds a cheaper solution.
//
// 🌲 What is stpg?
//
//	A small, dependency-disciplined engine that composes:
//
//	  • Graph primitives: dense-id adjacency, Kruskal MST, Dijkstra — core/, mst/, dijkstra/
//	  • A repairable Voronoi diagram over the current solution — voronoi/
//	  • The Distance Network Heuristic, a 2-approximation constructor — auxgraph/
//	  • Four local-search moves: Steiner-vertex insertion/elimination,
//	    key-path exchange, key-vertex elimination — steinerv/, keypath/, keyvertex/
//	  • The epoch loop composing them under a deadline — localsearch/
//
// ✨ Why it's built this way
//
//   - Deterministic   — every traversal is sorted by vertex or edge id, so
//     identical inputs always produce bit-identical weight traces
//   - Reentrant core  — the search itself holds no shared mutable state,
//     so the orchestrator can run many instances concurrently
//   - Tree invariants — the Steiner-vertex and key-vertex moves prune their
//     result back to a tree whose leaves are all terminals; no separate
//     invariant check is run
//
// Package layout:
//
//	core/, dijkstra/, mst/    — graph primitives and MST/shortest-path algorithms
//	treeops/                  — pruning, weight, crucial/key-vertex classification
//	voronoi/, auxgraph/       — Voronoi diagrams and the Distance Network Heuristic
//	startsol/                 — starting-solution constructors and a cache loader
//	steinerv/, keypath/, keyvertex/ — the four local-search neighborhoods
//	localsearch/              — the epoch loop
//	instance/                 — benchmark instance file parsing
//	orchestrator/, cmd/stpg/  — batch solving, CLI, and result serialization
package stpg
