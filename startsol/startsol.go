// Package startsol builds the two starting-solution constructors the
// engine's epoch loop is seeded from, and a minimal loader for pre-computed
// starting-solution caches.
package startsol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/voronoi-steiner/stpg/auxgraph"
	"github.com/voronoi-steiner/stpg/core"
	"github.com/voronoi-steiner/stpg/mst"
	"github.com/voronoi-steiner/stpg/treeops"
)

// Algorithm names a starting-solution constructor.
type Algorithm string

const (
	// DNH builds the starting solution via the Distance Network Heuristic
	// over the terminal set, then prunes to terminals.
	DNH Algorithm = "dnh"
	// MST builds the starting solution via a global MST, then prunes to
	// terminals.
	MST Algorithm = "mst"
)

// ErrUnknownAlgorithm indicates an Algorithm value outside {DNH, MST}.
var ErrUnknownAlgorithm = errors.New("startsol: unknown algorithm")

// Build constructs a starting solution for g/terminals using the named
// algorithm. Both constructors produce a valid Steiner tree (core.Tree
// invariants).
func Build(algo Algorithm, g *core.Graph, terminals map[int]bool) (*core.Tree, error) {
	switch algo {
	case DNH:
		return buildDNH(g, terminals)
	case MST:
		return buildMST(g, terminals)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}

func buildDNH(g *core.Graph, terminals map[int]bool) (*core.Tree, error) {
	termList := make([]int, 0, len(terminals))
	for t := range terminals {
		termList = append(termList, t)
	}
	tree, err := auxgraph.DNH(g, termList)
	if err != nil {
		return nil, err
	}
	return treeops.PruneTree(tree, terminals), nil
}

func buildMST(g *core.Graph, terminals map[int]bool) (*core.Tree, error) {
	mstEdges, _, err := mst.Kruskal(g.Vertices(), g.Edges())
	if err != nil {
		return nil, err
	}
	tree := core.NewTreeFromEdges(mstEdges)
	return treeops.PruneTree(tree, terminals), nil
}

// Load reads a previously computed starting-solution tree from a simple
// one-edge-per-line text format ("u v w"). Each line must name an edge of g;
// the edge's weight is taken from g and the w field is not read. The loaded
// edges are not checked to form a tree or to cover any terminal set.
func Load(r io.Reader, g *core.Graph) (*core.Tree, error) {
	scanner := bufio.NewScanner(r)
	tree := core.NewTree()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("startsol: malformed cache line %q", line)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("startsol: bad vertex id %q: %w", fields[0], err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("startsol: bad vertex id %q: %w", fields[1], err)
		}
		e, ok := g.EdgeBetween(u, v)
		if !ok {
			return nil, fmt.Errorf("startsol: no such edge (%d,%d) in graph", u, v)
		}
		tree.AddEdge(e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tree, nil
}
