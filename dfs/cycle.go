// Package dfs implements the two queries sbjgraph.Graph.ValidateTopology
// needs over a core.Graph: cycle detection (a depth-first search) and
// topological ordering (Kahn's algorithm). Nothing else in this module walks
// a core.Graph, so nothing else is implemented here.
package dfs

import (
	"errors"

	"github.com/go-techmap/techmap/core"
)

// ErrCyclic is returned by TopologicalSort when g is not a DAG.
var ErrCyclic = errors.New("dfs: graph contains a cycle")

type color int

const (
	white color = iota
	gray
	black
)

// DetectCycles reports whether g contains a cycle, returning every
// distinct cycle found as a vertex path (the repeated vertex closes the
// loop at both ends).
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	if g == nil {
		return false, nil, nil
	}

	colors := make(map[string]color)
	var cycles [][]string
	var stack []string

	var visit func(v string)
	visit = func(v string) {
		colors[v] = gray
		stack = append(stack, v)
		for _, next := range g.Successors(v) {
			switch colors[next] {
			case white:
				visit(next)
			case gray:
				cycles = append(cycles, closeCycle(stack, next))
			}
		}
		stack = stack[:len(stack)-1]
		colors[v] = black
	}

	for _, v := range g.Vertices() {
		if colors[v] == white {
			visit(v)
		}
	}
	return len(cycles) > 0, cycles, nil
}

// closeCycle extracts the portion of stack from start's first occurrence
// to the top, then repeats start to show the closing edge.
func closeCycle(stack []string, start string) []string {
	for i, v := range stack {
		if v == start {
			path := append([]string(nil), stack[i:]...)
			return append(path, start)
		}
	}
	return nil
}
