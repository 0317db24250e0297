package sbjgraph

import "sync"

// Graph is the subject graph: catalogs of nodes, inputs, outputs, logic
// (in topological order), DFFs, latches and ports, guarded by a
// sync.RWMutex so read-only inspection (cut enumeration, pattern matching,
// diagnostics) can run concurrently with itself while mutation is
// exclusive.
type Graph struct {
	mu sync.RWMutex

	nodes []*Node // nodes[0] is unused; real ids start at 1

	inputs  []NodeID
	outputs []NodeID
	logic   []NodeID // topological order: every fanin precedes its user

	dffs    []*DFF
	latches []*Latch
	ports   []*Port
	portOf  map[NodeID]int // node id -> index into ports, for AddPort's duplicate check

	levelValid bool
	maxLevel   int
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// NewGraph returns an empty subject graph.
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		nodes:  make([]*Node, 1, 64), // index 0 reserved
		portOf: make(map[NodeID]int),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// allocNode appends a fresh node of the given kind and returns it. Caller
// holds g.mu for writing.
func (g *Graph) allocNode(kind NodeKind) *Node {
	n := &Node{id: NodeID(len(g.nodes)), kind: kind}
	g.nodes = append(g.nodes, n)
	g.levelValid = false
	return n
}

// nodeLocked returns the node for id without locking; caller must hold
// g.mu (read or write).
func (g *Graph) nodeLocked(id NodeID) (*Node, error) {
	if id == invalidID || int(id) >= len(g.nodes) {
		return nil, ErrNodeNotFound
	}
	return g.nodes[id], nil
}

// Node returns the node identified by id.
func (g *Graph) Node(id NodeID) (*Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nodeLocked(id)
}

// NodeCount returns the number of real nodes in the graph (excludes the
// reserved index 0).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes) - 1
}

// Inputs returns the primary-input and DFF/latch-Q node ids, in creation
// order. The returned slice must not be mutated.
func (g *Graph) Inputs() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.inputs
}

// Outputs returns the primary-output and DFF/latch-data-in node ids, in
// creation order. The returned slice must not be mutated.
func (g *Graph) Outputs() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.outputs
}

// Logic returns every AND/XOR node id in topological order (every fan-in
// precedes its consumer). The returned slice must not be mutated.
func (g *Graph) Logic() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.logic
}

// DFFs returns every flip-flop in creation order. The returned slice must
// not be mutated.
func (g *Graph) DFFs() []*DFF {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.dffs
}

// Latches returns every latch in creation order. The returned slice must
// not be mutated.
func (g *Graph) Latches() []*Latch {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.latches
}

// Ports returns every named port in creation order. The returned slice
// must not be mutated.
func (g *Graph) Ports() []*Port {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.ports
}

// PortOf returns the port containing bit node id, if any.
func (g *Graph) PortOf(id NodeID) (*Port, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.portOf[id]
	if !ok {
		return nil, false
	}
	return g.ports[idx], true
}

// addFanout records that consumer reads from driver, unless driver is a
// constant (invalidID). Caller holds g.mu for writing.
func (g *Graph) addFanoutLocked(driver Handle, consumer NodeID) {
	if driver.IsConst() {
		return
	}
	dn := g.nodes[driver.id]
	dn.fanout = append(dn.fanout, consumer)
}
