package mapgen

import (
	"fmt"
	"sort"

	"github.com/go-techmap/techmap/maprecord"
	"github.com/go-techmap/techmap/sbjgraph"
)

type matchInfo struct {
	cell maprecord.CellID
	cut  []sbjgraph.Handle
}

// generator holds all state for a single Generate back-trace run.
type generator struct {
	sg     *sbjgraph.Graph
	record *maprecord.Record

	instances []*Instance

	// queue doubles as both the FIFO work list and the discovery-order
	// record: nothing is ever removed from it, only scanned past.
	queue []sbjgraph.Handle
	seen  map[sbjgraph.Handle]bool
	match map[sbjgraph.Handle]matchInfo

	cache      map[sbjgraph.Handle]InstanceID
	constCache map[bool]InstanceID // keyed by inversion: false->const0 cell, true->const1 cell

	// ppiInstanceOf maps a DFF/latch Q pseudo-input node to the instance
	// realizing that flip-flop/latch: its natural polarity is free (the
	// storage cell's own Q pin), never a separately matched/buffered wire.
	ppiInstanceOf map[sbjgraph.NodeID]InstanceID
}

func newGenerator(sg *sbjgraph.Graph, record *maprecord.Record) *generator {
	return &generator{
		sg:            sg,
		record:        record,
		seen:          make(map[sbjgraph.Handle]bool),
		match:         make(map[sbjgraph.Handle]matchInfo),
		cache:         make(map[sbjgraph.Handle]InstanceID),
		constCache:    make(map[bool]InstanceID),
		ppiInstanceOf: make(map[sbjgraph.NodeID]InstanceID),
	}
}

func (g *generator) newInstance(cell maprecord.CellID, inputs []PinSource) InstanceID {
	id := InstanceID(len(g.instances))
	g.instances = append(g.instances, &Instance{ID: id, Cell: cell, Inputs: inputs})
	return id
}

// driverOf returns the handle actually driving an output-kind sink node
// (a primary output, or a DFF/latch data-input tap): such nodes are pure
// sinks with no match of their own, so resolving them always means
// following their sole fan-in.
func (g *generator) driverOf(sinkID sbjgraph.NodeID) (sbjgraph.Handle, error) {
	n, err := g.sg.Node(sinkID)
	if err != nil {
		return sbjgraph.Handle{}, err
	}
	return n.Fanin(0), nil
}

// isFreePPI reports whether h is the natural (uninverted) polarity of a
// DFF/latch Q pseudo-input, in which case it resolves directly to that
// flip-flop/latch's own instance with no enumeration or matching at all.
func (g *generator) isFreePPI(h sbjgraph.Handle) (InstanceID, bool) {
	if h.Inv() {
		return 0, false
	}
	id, ok := g.ppiInstanceOf[h.Node()]
	return id, ok
}

func (g *generator) enqueue(h sbjgraph.Handle) {
	if h.IsConst() {
		return
	}
	if _, ok := g.isFreePPI(h); ok {
		return
	}
	if g.seen[h] {
		return
	}
	g.seen[h] = true
	g.queue = append(g.queue, h)
}

// isBipolarNaturalPI reports whether h is a true primary input at its own
// natural polarity: such a handle is a live external wire on its own, with
// no cell of its own to instantiate when some other cell's cut merely
// reads from it.
func (g *generator) isBipolarNaturalPI(h sbjgraph.Handle) bool {
	if h.IsConst() || h.Inv() {
		return false
	}
	n, err := g.sg.Node(h.Node())
	if err != nil {
		return false
	}
	return n.Bipolar()
}

// discover runs the breadth-first scan that builds g.queue/g.match:
// every (node, inv) back-trace will eventually need, each recorded once in
// first-discovery order. A leaf already queued as another demand's driver
// may therefore sit ahead of a node that depends on it; instantiateAll
// does not rely on this order.
func (g *generator) discover() error {
	for cursor := 0; cursor < len(g.queue); cursor++ {
		h := g.queue[cursor]
		cell, cut, ok := g.record.LogicMatch(h.Node(), h.Inv())
		if !ok {
			return fmt.Errorf("%w: node %d polarity %v", ErrMissingMatch, h.Node(), h.Inv())
		}
		g.match[h] = matchInfo{cell: cell, cut: cut.Leaves}
		for _, leaf := range cut.Leaves {
			if leaf.Node() == h.Node() {
				continue // self-cut leaf (trivial cut or SetInvMatch's synthetic cut), resolved specially at instantiate time
			}
			if g.isBipolarNaturalPI(leaf) {
				continue // resolvePin wires this straight to the input pin, never needs its own instance
			}
			g.enqueue(leaf)
		}
	}
	return nil
}

// resolveConst instantiates (once) the cell recorded for a Boolean
// constant and returns a PinSource pointing at it.
func (g *generator) resolveConst(h sbjgraph.Handle) (PinSource, error) {
	if id, ok := g.constCache[h.Inv()]; ok {
		return PinSource{Instance: id}, nil
	}
	var cell maprecord.CellID
	var ok bool
	if h.IsConst0() {
		cell, ok = g.record.Const0()
	} else {
		cell, ok = g.record.Const1()
	}
	if !ok {
		return PinSource{}, ErrNoConstCell
	}
	id := g.newInstance(cell, nil)
	g.constCache[h.Inv()] = id
	return PinSource{Instance: id}, nil
}

// resolvePin resolves leaf as an input pin of owner's cell instance. A
// true primary input at its natural polarity wires straight to the pin: it
// is a live external wire with no instance of its own. Otherwise, a leaf
// naming owner's own node (the trivial self-cut cutenum emits, or the
// synthetic single-leaf cut maprecord.SetInvMatch builds) names the
// storage instance of the PPI it identifies.
func (g *generator) resolvePin(leaf, owner sbjgraph.Handle) (PinSource, error) {
	if leaf.IsConst() {
		return g.resolveConst(leaf)
	}
	if g.isBipolarNaturalPI(leaf) {
		return PinSource{PrimaryInput: true, InputNode: leaf.Node()}, nil
	}
	if leaf.Node() == owner.Node() {
		id, ok := g.ppiInstanceOf[leaf.Node()]
		if !ok {
			return PinSource{}, fmt.Errorf("%w: node %d has a trivial self-cut but is neither a primary input nor a DFF/latch output", ErrMissingMatch, leaf.Node())
		}
		return PinSource{Instance: id}, nil
	}
	if id, ok := g.isFreePPI(leaf); ok {
		return PinSource{Instance: id}, nil
	}
	id, ok := g.cache[leaf]
	if !ok {
		return PinSource{}, fmt.Errorf("%w: node %d polarity %v resolved out of dependency order", ErrMissingMatch, leaf.Node(), leaf.Inv())
	}
	return PinSource{Instance: id}, nil
}

// instantiateAll instantiates every queued (node, inv) in ascending NodeID
// order -- a cut leaf is a transitive fan-in of its root and so was
// allocated, and numbered, before it, which guarantees every leaf of a cell
// is already instantiated before the cell itself -- and fills g.cache with
// the resulting instance ids.
func (g *generator) instantiateAll() error {
	order := append([]sbjgraph.Handle(nil), g.queue...)
	sort.SliceStable(order, func(i, j int) bool { return order[i].Node() < order[j].Node() })
	for _, h := range order {
		mi := g.match[h]
		pins := make([]PinSource, len(mi.cut))
		for j, leaf := range mi.cut {
			pin, err := g.resolvePin(leaf, h)
			if err != nil {
				return err
			}
			pins[j] = pin
		}
		g.cache[h] = g.newInstance(mi.cell, pins)
	}
	return nil
}

func (g *generator) resolveHandle(h sbjgraph.Handle) (PinSource, error) {
	if h.IsConst() {
		return g.resolveConst(h)
	}
	if id, ok := g.isFreePPI(h); ok {
		return PinSource{Instance: id}, nil
	}
	id, ok := g.cache[h]
	if !ok {
		return PinSource{}, fmt.Errorf("%w: node %d polarity %v was never resolved", ErrMissingMatch, h.Node(), h.Inv())
	}
	return PinSource{Instance: id}, nil
}

// Generate back-traces record from sg's primary outputs and DFF/latch
// data inputs, instantiating exactly the cells needed and nothing more.
// A nil sg produces an empty netlist (the empty-network scenario).
func Generate(sg *sbjgraph.Graph, record *maprecord.Record) (*MappedNetlist, error) {
	if sg == nil {
		return &MappedNetlist{}, nil
	}

	g := newGenerator(sg, record)

	// Phase 1: reserve an instance (and a free-PPI slot) for every
	// DFF/latch up front, so any combinational cone that reads another
	// flip-flop's Q resolves immediately rather than waiting on a pass
	// that hasn't instantiated it yet.
	dffs := sg.DFFs()
	mappedDFFs := make([]MappedDFF, len(dffs))
	for _, d := range dffs {
		cell, _, ok := record.DFFMatch(d.ID(), false)
		if !ok {
			return nil, fmt.Errorf("%w: dff %d", ErrMissingMatch, d.ID())
		}
		id := g.newInstance(cell, nil)
		g.ppiInstanceOf[d.DataOut().Node()] = id
		mappedDFFs[d.ID()] = MappedDFF{
			SourceID: d.ID(),
			Instance: id,
			Clock:    d.Clock(),
		}
		if clear, ok := d.Clear(); ok {
			mappedDFFs[d.ID()].Clear, mappedDFFs[d.ID()].HasClear = clear, true
		}
		if preset, ok := d.Preset(); ok {
			mappedDFFs[d.ID()].Preset, mappedDFFs[d.ID()].HasPreset = preset, true
		}
	}

	latches := sg.Latches()
	mappedLatches := make([]MappedLatch, len(latches))
	for _, l := range latches {
		cell, _, ok := record.LatchMatch(l.ID(), false)
		if !ok {
			return nil, fmt.Errorf("%w: latch %d", ErrMissingMatch, l.ID())
		}
		id := g.newInstance(cell, nil)
		g.ppiInstanceOf[l.DataOut().Node()] = id
		mappedLatches[l.ID()] = MappedLatch{
			SourceID: l.ID(),
			Instance: id,
			Enable:   l.Enable(),
		}
		if clear, ok := l.Clear(); ok {
			mappedLatches[l.ID()].Clear, mappedLatches[l.ID()].HasClear = clear, true
		}
		if preset, ok := l.Preset(); ok {
			mappedLatches[l.ID()].Preset, mappedLatches[l.ID()].HasPreset = preset, true
		}
	}

	// Phase 2: seed the queue with every driver back-trace must reach.
	// sg.Outputs() already lists both primary-output sinks and DFF/latch
	// data-in taps, so a single pass covers every demand.
	for _, outID := range sg.Outputs() {
		driver, err := g.driverOf(outID)
		if err != nil {
			return nil, err
		}
		g.enqueue(driver)
	}

	if err := g.discover(); err != nil {
		return nil, err
	}
	if err := g.instantiateAll(); err != nil {
		return nil, err
	}

	// Phase 3: now that every back-traced node has an instance, wire the
	// DFF/latch data inputs and the ports.
	for _, d := range dffs {
		driver, err := g.driverOf(d.DataIn().Node())
		if err != nil {
			return nil, err
		}
		pin, err := g.resolveHandle(driver)
		if err != nil {
			return nil, err
		}
		mappedDFFs[d.ID()].DataIn = pin
	}
	for _, l := range latches {
		driver, err := g.driverOf(l.DataIn().Node())
		if err != nil {
			return nil, err
		}
		pin, err := g.resolveHandle(driver)
		if err != nil {
			return nil, err
		}
		mappedLatches[l.ID()].DataIn = pin
	}

	ports := make([]MappedPort, 0, len(sg.Ports()))
	for _, p := range sg.Ports() {
		mp := MappedPort{Name: p.Name()}
		bits := p.Bits()
		if len(bits) > 0 {
			n, err := sg.Node(bits[0])
			if err != nil {
				return nil, err
			}
			mp.IsInput = n.Kind() == sbjgraph.KindInput
		}
		mp.Bits = make([]MappedPortBit, len(bits))
		for i, bitID := range bits {
			if mp.IsInput {
				mp.Bits[i] = MappedPortBit{PrimaryInput: true, InputNode: bitID}
				continue
			}
			driver, err := g.driverOf(bitID)
			if err != nil {
				return nil, err
			}
			pin, err := g.resolveHandle(driver)
			if err != nil {
				return nil, err
			}
			mp.Bits[i] = MappedPortBit{Instance: pin.Instance, PrimaryInput: pin.PrimaryInput, InputNode: pin.InputNode}
		}
		ports = append(ports, mp)
	}

	return &MappedNetlist{
		Instances: g.instances,
		Ports:     ports,
		DFFs:      mappedDFFs,
		Latches:   mappedLatches,
	}, nil
}
