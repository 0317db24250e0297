package sbjgraph

// NewInput appends a new primary input node and returns its handle.
// bipolar is stored on the node (see Node.Bipolar); true primary inputs
// normally pass true, DFF/latch Q nodes pass false (only NewDFF/NewLatch
// construct those). The cut enumerator does not read it: every input gets
// only its uninverted singleton cut.
func (g *Graph) NewInput(bipolar bool) Handle {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.newInputLocked(bipolar)
}

func (g *Graph) newInputLocked(bipolar bool) Handle {
	n := g.allocNode(KindInput)
	n.bipol = bipolar
	n.subID = len(g.inputs)
	g.inputs = append(g.inputs, n.id)
	return Handle{id: n.id}
}

// NewOutput appends a new primary output node driven by h and returns its
// id. An output node is a pure sink: it has no fan-out of its own.
func (g *Graph) NewOutput(h Handle) (NodeID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !h.IsConst() {
		if _, err := g.nodeLocked(h.id); err != nil {
			return invalidID, err
		}
	}
	n := g.allocNode(KindOutput)
	n.fanins[0] = h
	n.subID = len(g.outputs)
	g.outputs = append(g.outputs, n.id)
	g.addFanoutLocked(h, n.id)
	return n.id, nil
}

// NewAnd returns a handle for a AND b, folding away constants and the
// self-aliased cases (x AND x, x AND !x) without allocating a node.
func (g *Graph) NewAnd(a, b Handle) (Handle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkOperandsLocked(a, b); err != nil {
		return Handle{}, err
	}
	return g.newAndLocked(a, b), nil
}

func (g *Graph) newAndLocked(a, b Handle) Handle {
	switch {
	case a.IsConst0() || b.IsConst0():
		return Const0
	case a.IsConst1():
		return b
	case b.IsConst1():
		return a
	case !a.IsConst() && !b.IsConst() && a.id == b.id:
		if a.inv == b.inv {
			return a
		}
		return Const0
	}
	n := g.allocNode(KindAnd)
	n.fanins = [2]Handle{a, b}
	g.logic = append(g.logic, n.id)
	g.addFanoutLocked(a, n.id)
	g.addFanoutLocked(b, n.id)
	return Handle{id: n.id}
}

// NewXor returns a handle for a XOR b, folding away constants and the
// self-aliased cases (x XOR x = 0, x XOR !x = 1) without allocating a node.
func (g *Graph) NewXor(a, b Handle) (Handle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkOperandsLocked(a, b); err != nil {
		return Handle{}, err
	}
	return g.newXorLocked(a, b), nil
}

func (g *Graph) newXorLocked(a, b Handle) Handle {
	switch {
	case a.IsConst0():
		return b
	case b.IsConst0():
		return a
	case a.IsConst1():
		return b.Not()
	case b.IsConst1():
		return a.Not()
	case !a.IsConst() && !b.IsConst() && a.id == b.id:
		if a.inv == b.inv {
			return Const0
		}
		return Const1
	}
	n := g.allocNode(KindXor)
	n.fanins = [2]Handle{a, b}
	g.logic = append(g.logic, n.id)
	g.addFanoutLocked(a, n.id)
	g.addFanoutLocked(b, n.id)
	return Handle{id: n.id}
}

// NewOr returns a handle for a OR b. The subject graph only ever stores
// AND and XOR nodes (see SPEC_FULL.md's representation notes); OR is
// synthesized via De Morgan (NOT (NOT a AND NOT b)), which costs nothing
// extra since inversion is free on a Handle.
func (g *Graph) NewOr(a, b Handle) (Handle, error) {
	h, err := g.NewAnd(a.Not(), b.Not())
	if err != nil {
		return Handle{}, err
	}
	return h.Not(), nil
}

func (g *Graph) checkOperandsLocked(hs ...Handle) error {
	for _, h := range hs {
		if h.IsConst() {
			continue
		}
		if _, err := g.nodeLocked(h.id); err != nil {
			return err
		}
	}
	return nil
}

// NewExpr folds leaves pairwise with combine into a single handle using a
// balanced binary tree (depth O(log n) rather than a left-leaning chain),
// matching how a synthesis front-end would build a wide AND/XOR/OR from a
// flattened expression.
func (g *Graph) NewExpr(combine func(a, b Handle) (Handle, error), leaves []Handle) (Handle, error) {
	if len(leaves) == 0 {
		return Handle{}, ErrEmptyExpr
	}
	if len(leaves) == 1 {
		return leaves[0], nil
	}
	mid := len(leaves) / 2
	left, err := g.NewExpr(combine, leaves[:mid])
	if err != nil {
		return Handle{}, err
	}
	right, err := g.NewExpr(combine, leaves[mid:])
	if err != nil {
		return Handle{}, err
	}
	return combine(left, right)
}

// optAsyncLine bundles an optional async clear/preset line for NewDFF and
// NewLatch so callers don't juggle (Handle, bool) pairs inline.
type optAsyncLine struct {
	h  Handle
	ok bool
}

// Clear wraps h as a present async-clear line.
func Clear(h Handle) optAsyncLine { return optAsyncLine{h: h, ok: true} }

// Preset wraps h as a present async-preset line.
func Preset(h Handle) optAsyncLine { return optAsyncLine{h: h, ok: true} }

// NoAsync reports the absence of an async clear/preset line.
var NoAsync = optAsyncLine{}

// NewDFF appends an edge-triggered flip-flop. Its Q terminal is a fresh
// input-kind node (DataOut) that cut enumeration and pattern matching see
// as an ordinary PPI; dataIn is a combinational driver recorded as a new
// output-kind node (a sink) so the logic cone feeding it is well-formed
// and reachable from Graph.Outputs.
func (g *Graph) NewDFF(dataIn, clock Handle, clear, preset optAsyncLine) (*DFF, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	operands := []Handle{dataIn, clock}
	if clear.ok {
		operands = append(operands, clear.h)
	}
	if preset.ok {
		operands = append(operands, preset.h)
	}
	if err := g.checkOperandsLocked(operands...); err != nil {
		return nil, err
	}
	dataInNode := g.allocNode(KindOutput)
	dataInNode.fanins[0] = dataIn
	dataInNode.subID = len(g.outputs)
	g.outputs = append(g.outputs, dataInNode.id)
	g.addFanoutLocked(dataIn, dataInNode.id)

	q := g.newInputLocked(false)

	d := &DFF{
		id:       len(g.dffs),
		dataIn:   Handle{id: dataInNode.id},
		dataOut:  q,
		clock:    clock,
		clear:    clear.h,
		hasClear: clear.ok,
		preset:   preset.h,
		hasPreset: preset.ok,
	}
	g.dffs = append(g.dffs, d)
	return d, nil
}

// NewLatch appends a level-sensitive latch, structured like NewDFF but
// gated by Enable rather than an edge-triggered Clock.
func (g *Graph) NewLatch(dataIn, enable Handle, clear, preset optAsyncLine) (*Latch, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	operands := []Handle{dataIn, enable}
	if clear.ok {
		operands = append(operands, clear.h)
	}
	if preset.ok {
		operands = append(operands, preset.h)
	}
	if err := g.checkOperandsLocked(operands...); err != nil {
		return nil, err
	}
	dataInNode := g.allocNode(KindOutput)
	dataInNode.fanins[0] = dataIn
	dataInNode.subID = len(g.outputs)
	g.outputs = append(g.outputs, dataInNode.id)
	g.addFanoutLocked(dataIn, dataInNode.id)

	q := g.newInputLocked(false)

	l := &Latch{
		id:       len(g.latches),
		dataIn:   Handle{id: dataInNode.id},
		dataOut:  q,
		enable:   enable,
		clear:    clear.h,
		hasClear: clear.ok,
		preset:   preset.h,
		hasPreset: preset.ok,
	}
	g.latches = append(g.latches, l)
	return l, nil
}

// AddPort groups bits (node ids, each already an input or output node)
// under name. All bits must share the same direction (all inputs, or all
// outputs); mixing is rejected since a port is, by construction, either a
// source or a sink.
func (g *Graph) AddPort(name string, bits []NodeID) (*Port, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if name == "" {
		return nil, ErrEmptyPortName
	}
	var wantKind NodeKind
	if len(bits) > 0 {
		first, err := g.nodeLocked(bits[0])
		if err != nil {
			return nil, err
		}
		wantKind = first.kind
	}
	for _, b := range bits {
		if _, ok := g.portOf[b]; ok {
			return nil, ErrDuplicatePortBit
		}
		n, err := g.nodeLocked(b)
		if err != nil {
			return nil, err
		}
		if n.kind != wantKind {
			if wantKind == KindInput {
				return nil, ErrPortBitNotInput
			}
			return nil, ErrPortBitNotOutput
		}
	}
	p := &Port{name: name, bits: append([]NodeID(nil), bits...)}
	idx := len(g.ports)
	g.ports = append(g.ports, p)
	for _, b := range bits {
		g.portOf[b] = idx
	}
	return p, nil
}
