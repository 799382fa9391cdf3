// Package instance parses the benchmark instance text format: a header
// line, a vertex/edge count declaration, m edge lines, a fixed run of
// separator lines, a terminal count declaration, and k terminal lines.
// External (1-based, possibly sparse) vertex ids are remapped to the dense
// 0..N-1 range core.Graph requires.
package instance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/voronoi-steiner/stpg/core"
)

// ErrFormat indicates the instance file did not match the expected shape.
type ErrFormat struct {
	Line int
	Msg  string
}

func (e *ErrFormat) Error() string {
	return fmt.Sprintf("instance: line %d: %s", e.Line, e.Msg)
}

// Instance is a parsed benchmark instance: the graph and its terminal set,
// both over dense 0..N-1 vertex ids.
type Instance struct {
	Graph     *core.Graph
	Terminals map[int]bool
}

// Parse reads an instance file from r.
//
//	<header line>                skipped
//	Nodes <n>
//	Edges <m>
//	E <u> <v> <w>                 repeated m times
//	<3 separator lines>            skipped
//	Terminals <k>
//	T <t_i>                        repeated k times
//
// Edge and terminal lines are identified positionally, not by keyword match:
// the parser reads the last 3 (resp. last 1) whitespace-separated tokens of
// each line as u, v, w (resp. t).
func Parse(r io.Reader) (*Instance, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	nextLine := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineNo++
		return scanner.Text(), true
	}

	if _, ok := nextLine(); !ok {
		return nil, &ErrFormat{lineNo, "missing header line"}
	}

	nodesLine, ok := nextLine()
	if !ok {
		return nil, &ErrFormat{lineNo, "missing Nodes line"}
	}
	n, err := lastInt(nodesLine)
	if err != nil {
		return nil, &ErrFormat{lineNo, "bad Nodes line: " + err.Error()}
	}

	edgesLine, ok := nextLine()
	if !ok {
		return nil, &ErrFormat{lineNo, "missing Edges line"}
	}
	m, err := lastInt(edgesLine)
	if err != nil {
		return nil, &ErrFormat{lineNo, "bad Edges line: " + err.Error()}
	}

	remap := newVertexRemap()
	type rawEdge struct{ u, v int; w int64 }
	rawEdges := make([]rawEdge, 0, m)

	for i := 0; i < m; i++ {
		line, ok := nextLine()
		if !ok {
			return nil, &ErrFormat{lineNo, "truncated edge list"}
		}
		u, v, w, err := lastThree(line)
		if err != nil {
			return nil, &ErrFormat{lineNo, "bad edge line: " + err.Error()}
		}
		rawEdges = append(rawEdges, rawEdge{remap.id(u), remap.id(v), w})
	}

	for i := 0; i < 3; i++ {
		if _, ok := nextLine(); !ok {
			return nil, &ErrFormat{lineNo, "missing separator line"}
		}
	}

	termsLine, ok := nextLine()
	if !ok {
		return nil, &ErrFormat{lineNo, "missing Terminals line"}
	}
	k, err := lastInt(termsLine)
	if err != nil {
		return nil, &ErrFormat{lineNo, "bad Terminals line: " + err.Error()}
	}

	terminals := make(map[int]bool, k)
	for i := 0; i < k; i++ {
		line, ok := nextLine()
		if !ok {
			return nil, &ErrFormat{lineNo, "truncated terminal list"}
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return nil, &ErrFormat{lineNo, "empty terminal line"}
		}
		tExt, err := strconv.Atoi(fields[len(fields)-1])
		if err != nil {
			return nil, &ErrFormat{lineNo, "bad terminal id: " + err.Error()}
		}
		terminals[remap.id(tExt)] = true
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	b := core.NewBuilder(maxInt(n, remap.count()))
	for _, e := range rawEdges {
		if _, err := b.AddEdge(e.u, e.v, e.w); err != nil {
			return nil, fmt.Errorf("instance: %w", err)
		}
	}
	g, err := b.Freeze()
	if err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}

	return &Instance{Graph: g, Terminals: terminals}, nil
}

// vertexRemap assigns dense 0..N-1 ids to external vertex identifiers in
// first-seen order.
type vertexRemap struct {
	ids map[int]int
}

func newVertexRemap() *vertexRemap { return &vertexRemap{ids: make(map[int]int)} }

func (r *vertexRemap) id(external int) int {
	if id, ok := r.ids[external]; ok {
		return id
	}
	id := len(r.ids)
	r.ids[external] = id
	return id
}

func (r *vertexRemap) count() int { return len(r.ids) }

func lastInt(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty line")
	}
	return strconv.Atoi(fields[len(fields)-1])
}

func lastThree(line string) (int, int, int64, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, 0, 0, fmt.Errorf("expected at least 3 fields, got %d", len(fields))
	}
	tail := fields[len(fields)-3:]
	u, err := strconv.Atoi(tail[0])
	if err != nil {
		return 0, 0, 0, err
	}
	v, err := strconv.Atoi(tail[1])
	if err != nil {
		return 0, 0, 0, err
	}
	w, err := strconv.ParseInt(tail[2], 10, 64)
	if err != nil {
		return 0, 0, 0, err
	}
	return u, v, w, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
