package sbjgraph

import (
	"fmt"
	"strconv"

	"github.com/go-techmap/techmap/core"
	"github.com/go-techmap/techmap/dfs"
)

// vertexID renders a NodeID as the string vertex identifier core.Graph
// expects.
func vertexID(id NodeID) string { return "n" + strconv.FormatUint(uint64(id), 10) }

// nodeIDFromVertex inverts vertexID.
func nodeIDFromVertex(v string) (NodeID, error) {
	n, err := strconv.ParseUint(v[1:], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("sbjgraph: malformed exported vertex id %q: %w", v, err)
	}
	return NodeID(n), nil
}

// ToCoreGraph exports the driver-to-consumer dependency relation of g as a
// directed core.Graph: one vertex per node, one edge per fan-in (driver ->
// consumer). Boolean polarity is dropped; only dependency order survives,
// which is exactly what a topological/cycle check needs.
//
// This exists so graphs assembled outside this package's own constructors
// (for instance by a future external bench-to-SbjGraph conversion step)
// can be certified acyclic and properly ordered with this module's own
// generic traversal machinery before being handed to cut enumeration.
func (g *Graph) ToCoreGraph() (*core.Graph, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	cg := core.NewGraph(core.WithDirected(true))
	for i := 1; i < len(g.nodes); i++ {
		if err := cg.AddVertex(vertexID(NodeID(i))); err != nil {
			return nil, fmt.Errorf("sbjgraph: export vertex: %w", err)
		}
	}
	addDep := func(driver Handle, consumer NodeID) error {
		if driver.IsConst() {
			return nil
		}
		_, err := cg.AddEdge(vertexID(driver.id), vertexID(consumer), 0)
		return err
	}
	for _, id := range g.logic {
		n := g.nodes[id]
		if err := addDep(n.fanins[0], id); err != nil {
			return nil, fmt.Errorf("sbjgraph: export edge: %w", err)
		}
		if err := addDep(n.fanins[1], id); err != nil {
			return nil, fmt.Errorf("sbjgraph: export edge: %w", err)
		}
	}
	for _, id := range g.outputs {
		n := g.nodes[id]
		if err := addDep(n.fanins[0], id); err != nil {
			return nil, fmt.Errorf("sbjgraph: export edge: %w", err)
		}
	}
	return cg, nil
}

// ValidateTopology certifies that g's driver-to-consumer dependency
// relation is acyclic and that g.logic's construction order -- the order
// recomputeLocked trusts to label every node's level in a single forward
// pass -- agrees with an independently derived topological order of that
// same relation. It uses this module's own dfs package against the
// exported core.Graph view, returning ErrCyclic (wrapping the offending
// cycle's vertex path, or the offending out-of-order pair) on failure.
func (g *Graph) ValidateTopology() error {
	cg, err := g.ToCoreGraph()
	if err != nil {
		return err
	}
	hasCycle, cycles, err := dfs.DetectCycles(cg)
	if err != nil {
		return fmt.Errorf("sbjgraph: validate topology: %w", err)
	}
	if hasCycle {
		return fmt.Errorf("%w: %v", ErrCyclic, cycles)
	}

	order, err := dfs.TopologicalSort(cg)
	if err != nil {
		return fmt.Errorf("sbjgraph: validate topology: %w", err)
	}
	return g.checkConstructionOrder(order)
}

// checkConstructionOrder verifies that every node in g.logic comes after
// both of its fan-ins in order, a topological sort of the same dependency
// relation ToCoreGraph exported. This is the structural assumption
// recomputeLocked relies on instead of re-deriving a topological order on
// every level computation; ValidateTopology is how a graph assembled
// outside this package's own constructors gets that assumption certified.
func (g *Graph) checkConstructionOrder(order []string) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	position := make(map[NodeID]int, len(order))
	for i, v := range order {
		id, err := nodeIDFromVertex(v)
		if err != nil {
			return err
		}
		position[id] = i
	}

	checkFanin := func(user NodeID, fanin Handle) error {
		if fanin.IsConst() {
			return nil
		}
		if position[fanin.id] >= position[user] {
			return fmt.Errorf("%w: node %d constructed before its fan-in %d", ErrCyclic, user, fanin.id)
		}
		return nil
	}

	for _, id := range g.logic {
		n := g.nodes[id]
		if err := checkFanin(id, n.fanins[0]); err != nil {
			return err
		}
		if err := checkFanin(id, n.fanins[1]); err != nil {
			return err
		}
	}
	return nil
}
