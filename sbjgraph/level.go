package sbjgraph

// handleLevel returns the level contribution of a handle: 0 for a
// constant (so the first logic node fed only by constants still lands at
// level 1... actually logic folds constants away entirely, so this path
// is only reached by Outputs/DFF/Latch taps wired directly to a constant)
// or the referenced node's level otherwise.
func (g *Graph) handleLevel(h Handle) int {
	if h.IsConst() {
		return 0
	}
	return g.nodes[h.id].level
}

// recomputeLocked walks Logic in topological order and assigns each
// node's level as one more than the deeper of its two fan-ins, then folds
// that into every output/DFF/latch tap to find the network's maximum
// combinational depth. Caller holds g.mu for writing.
func (g *Graph) recomputeLocked() {
	for _, id := range g.inputs {
		g.nodes[id].level = 0
	}
	for _, id := range g.logic {
		n := g.nodes[id]
		l0, l1 := g.handleLevel(n.fanins[0]), g.handleLevel(n.fanins[1])
		max := l0
		if l1 > max {
			max = l1
		}
		n.level = max + 1
	}
	maxLevel := 0
	for _, id := range g.outputs {
		n := g.nodes[id]
		n.level = g.handleLevel(n.fanins[0])
		if n.level > maxLevel {
			maxLevel = n.level
		}
	}
	g.maxLevel = maxLevel
	g.levelValid = true
}

// Level returns the network's maximum combinational depth: the greatest
// number of logic nodes on any driver-to-sink path. Results are cached and
// invalidated by any structural mutation (NewAnd, NewXor, NewDFF, ...), so
// repeated calls between mutations are O(1).
func (g *Graph) Level() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.levelValid {
		g.recomputeLocked()
	}
	return g.maxLevel
}

// NodeLevel returns the level of a single node, recomputing the whole
// graph's levels first if they are stale.
func (g *Graph) NodeLevel(id NodeID) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, err := g.nodeLocked(id); err != nil {
		return 0, err
	}
	if !g.levelValid {
		g.recomputeLocked()
	}
	return g.nodes[id].level, nil
}
