package sbjgraph

// Copy returns a deep, structurally independent duplicate of g: every
// node, DFF, latch and port is re-allocated and every NodeID is remapped
// through an explicit id table so the clone never aliases the source's
// internal slices, the same explicit-remap deep-copy shape as the teacher
// pack's generic graph container (see `core.Graph.Clone` under
// `_examples/katalvlaran-lvlath`).
//
// Complexity: O(V) in the node count plus O(F) in total fan-out entries.
func (g *Graph) Copy() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		nodes:  make([]*Node, len(g.nodes)),
		portOf: make(map[NodeID]int, len(g.portOf)),
	}
	// remap[oldID] == newID; identity here since Copy preserves indices,
	// but kept explicit so the remap step is visible and auditable rather
	// than relying on incidental array-index equality.
	remap := make([]NodeID, len(g.nodes))
	for i := range g.nodes {
		remap[i] = NodeID(i)
	}

	remapHandle := func(h Handle) Handle {
		if h.IsConst() {
			return h
		}
		return Handle{id: remap[h.id], inv: h.inv}
	}

	clone.nodes[0] = nil
	for i := 1; i < len(g.nodes); i++ {
		src := g.nodes[i]
		dst := &Node{
			id:     remap[src.id],
			kind:   src.kind,
			bipol:  src.bipol,
			subID:  src.subID,
			level:  src.level,
			fanout: append([]NodeID(nil), src.fanout...),
		}
		dst.fanins = [2]Handle{remapHandle(src.fanins[0]), remapHandle(src.fanins[1])}
		clone.nodes[i] = dst
	}
	for i, fo := range clone.nodes {
		if i == 0 {
			continue
		}
		for j, id := range fo.fanout {
			fo.fanout[j] = remap[id]
		}
	}

	clone.inputs = remapIDs(remap, g.inputs)
	clone.outputs = remapIDs(remap, g.outputs)
	clone.logic = remapIDs(remap, g.logic)

	clone.dffs = make([]*DFF, len(g.dffs))
	for i, d := range g.dffs {
		clone.dffs[i] = &DFF{
			id:        d.id,
			dataIn:    remapHandle(d.dataIn),
			dataOut:   remapHandle(d.dataOut),
			clock:     remapHandle(d.clock),
			clear:     remapHandle(d.clear),
			hasClear:  d.hasClear,
			preset:    remapHandle(d.preset),
			hasPreset: d.hasPreset,
		}
	}
	clone.latches = make([]*Latch, len(g.latches))
	for i, l := range g.latches {
		clone.latches[i] = &Latch{
			id:        l.id,
			dataIn:    remapHandle(l.dataIn),
			dataOut:   remapHandle(l.dataOut),
			enable:    remapHandle(l.enable),
			clear:     remapHandle(l.clear),
			hasClear:  l.hasClear,
			preset:    remapHandle(l.preset),
			hasPreset: l.hasPreset,
		}
	}
	clone.ports = make([]*Port, len(g.ports))
	for i, p := range g.ports {
		np := &Port{name: p.name, bits: remapIDs(remap, p.bits)}
		clone.ports[i] = np
		for _, b := range np.bits {
			clone.portOf[b] = i
		}
	}

	clone.levelValid = g.levelValid
	clone.maxLevel = g.maxLevel
	return clone
}

func remapIDs(remap []NodeID, ids []NodeID) []NodeID {
	out := make([]NodeID, len(ids))
	for i, id := range ids {
		out[i] = remap[id]
	}
	return out
}
