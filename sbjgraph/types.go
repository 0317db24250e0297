package sbjgraph

import "fmt"

// NodeID uniquely addresses a Node within a Graph. The zero value is
// reserved: it never names a real node and is instead used, together with
// a Handle's inversion bit, to spell the two Boolean constants.
type NodeID uint32

// invalidID is NodeID's reserved sentinel, doubling as the constant-handle
// marker (see Const0/Const1).
const invalidID NodeID = 0

// NodeKind classifies what role a Node plays in the subject graph.
type NodeKind uint8

const (
	// KindInput marks a primary input or, equivalently, the data-output
	// pseudo-node of a DFF/latch (its Q terminal): both are boundary
	// values that cut enumeration treats as primary inputs (PPIs).
	KindInput NodeKind = iota
	// KindOutput marks a primary output or a DFF/latch data-input tap.
	KindOutput
	// KindAnd marks a two-input AND node.
	KindAnd
	// KindXor marks a two-input XOR node.
	KindXor
)

// String renders a NodeKind for diagnostics.
func (k NodeKind) String() string {
	switch k {
	case KindInput:
		return "INPUT"
	case KindOutput:
		return "OUTPUT"
	case KindAnd:
		return "AND"
	case KindXor:
		return "XOR"
	default:
		return fmt.Sprintf("NodeKind(%d)", uint8(k))
	}
}

// Handle names a signal: a NodeID together with an inversion bit. The
// distinguished pair {invalidID, false} is the Boolean constant 0, and
// {invalidID, true} is the Boolean constant 1 -- Not() therefore turns one
// constant into the other for free, exactly as it does for any other node.
type Handle struct {
	id  NodeID
	inv bool
}

// Const0 is the Boolean constant zero.
var Const0 = Handle{id: invalidID, inv: false}

// Const1 is the Boolean constant one.
var Const1 = Handle{id: invalidID, inv: true}

// NewHandle builds a Handle for a real graph node with the given polarity.
func NewHandle(id NodeID, inv bool) Handle { return Handle{id: id, inv: inv} }

// Node reports the NodeID this handle refers to. For a constant handle
// this is the reserved invalidID value; callers should check IsConst first.
func (h Handle) Node() NodeID { return h.id }

// Inv reports whether this handle is inverted relative to its node's
// natural (uninverted) value.
func (h Handle) Inv() bool { return h.inv }

// IsConst reports whether h names one of the two Boolean constants.
func (h Handle) IsConst() bool { return h.id == invalidID }

// IsConst0 reports whether h is exactly the constant zero.
func (h Handle) IsConst0() bool { return h.id == invalidID && !h.inv }

// IsConst1 reports whether h is exactly the constant one.
func (h Handle) IsConst1() bool { return h.id == invalidID && h.inv }

// Not returns the complement of h: same node, flipped polarity. Applied to
// a constant this swaps Const0 and Const1.
func (h Handle) Not() Handle { return Handle{id: h.id, inv: !h.inv} }

// Normalize returns h with its inversion bit cleared.
func (h Handle) Normalize() Handle { return Handle{id: h.id} }

// WithInv returns h with its inversion bit set to inv.
func (h Handle) WithInv(inv bool) Handle { return Handle{id: h.id, inv: inv} }

// String renders a Handle for diagnostics, e.g. "n5" or "!n5" or "0"/"1".
func (h Handle) String() string {
	if h.IsConst0() {
		return "0"
	}
	if h.IsConst1() {
		return "1"
	}
	if h.inv {
		return fmt.Sprintf("!n%d", h.id)
	}
	return fmt.Sprintf("n%d", h.id)
}

// Node is a single vertex of the subject graph: a unique id, a kind, and
// (for two-input logic kinds) exactly two fan-in handles. The fan-out list
// records every node whose fan-in references this one, maintained
// incrementally by the builder so callers never need to scan the whole
// graph to answer "who drives from here".
type Node struct {
	id     NodeID
	kind   NodeKind
	bipol  bool // input nodes only: the bipolar flag passed to NewInput
	subID  int  // dense index within its catalog (inputs or outputs); 0 for logic nodes
	fanins [2]Handle
	fanout []NodeID
	level  int
}

// ID returns the node's identity.
func (n *Node) ID() NodeID { return n.id }

// Kind returns the node's role.
func (n *Node) Kind() NodeKind { return n.kind }

// IsLogic reports whether n is a two-input AND or XOR node.
func (n *Node) IsLogic() bool { return n.kind == KindAnd || n.kind == KindXor }

// Bipolar reports the flag an input node was created with: true for true
// primary inputs by convention, false for DFF/latch Q pseudo-inputs.
// mapgen uses it to tell a primary input (wired straight to a pin at its
// natural polarity) from a Q pseudo-input; the inverted polarity of a
// bipolar input is still realized through an inverter cell.
func (n *Node) Bipolar() bool { return n.bipol }

// SubID returns the node's position within its own catalog: index into
// Graph.Inputs() for an input node, or Graph.Outputs() for an output node.
// Logic nodes are not numbered this way; their SubID is always 0.
func (n *Node) SubID() int { return n.subID }

// Fanin returns the i'th fan-in handle (i in {0,1}) of a logic node.
func (n *Node) Fanin(i int) Handle { return n.fanins[i] }

// Fanout returns the node ids that list n among their fan-ins, or (for an
// output node) that n feeds as a DFF/latch data-input tap. The returned
// slice must not be mutated.
func (n *Node) Fanout() []NodeID { return n.fanout }

// Level returns the node's last-computed topological level; call
// Graph.Level to ensure it is up to date first.
func (n *Node) Level() int { return n.level }

// Port groups an ordered run of bit nodes under a single logical name,
// mirroring a bus or named signal in the original netlist.
type Port struct {
	name string
	bits []NodeID
}

// Name returns the port's name.
func (p *Port) Name() string { return p.name }

// Bits returns the ordered node ids making up this port. The returned
// slice must not be mutated.
func (p *Port) Bits() []NodeID { return p.bits }

// DFF is an edge-triggered flip-flop: a combinational data-input driver, a
// clock, and optional async clear/preset, paired with the Q pseudo-input
// node (DataOut) that the rest of the network observes as a PPI.
type DFF struct {
	id       int
	dataIn   Handle
	dataOut  Handle
	clock    Handle
	clear    Handle
	hasClear bool
	preset   Handle
	hasPreset bool
}

// ID returns the DFF's dense index within Graph.DFFs.
func (d *DFF) ID() int { return d.id }

// DataIn returns the handle of the output-kind tap node whose sole fan-in
// is the combinational driver latched on the active clock edge.
func (d *DFF) DataIn() Handle { return d.dataIn }

// DataOut returns the Q pseudo-input handle the rest of the network reads.
func (d *DFF) DataOut() Handle { return d.dataOut }

// Clock returns the clock handle.
func (d *DFF) Clock() Handle { return d.clock }

// Clear returns the asynchronous clear handle and whether one is present.
func (d *DFF) Clear() (Handle, bool) { return d.clear, d.hasClear }

// Preset returns the asynchronous preset handle and whether one is present.
func (d *DFF) Preset() (Handle, bool) { return d.preset, d.hasPreset }

// Latch is a level-sensitive storage element: transparent while Enable is
// asserted, holding DataOut otherwise.
type Latch struct {
	id        int
	dataIn    Handle
	dataOut   Handle
	enable    Handle
	clear     Handle
	hasClear  bool
	preset    Handle
	hasPreset bool
}

// ID returns the latch's dense index within Graph.Latches.
func (l *Latch) ID() int { return l.id }

// DataIn returns the handle of the output-kind tap node whose sole fan-in
// is the combinational driver passed through while transparent.
func (l *Latch) DataIn() Handle { return l.dataIn }

// DataOut returns the Q pseudo-input handle the rest of the network reads.
func (l *Latch) DataOut() Handle { return l.dataOut }

// Enable returns the transparency-enable handle.
func (l *Latch) Enable() Handle { return l.enable }

// Clear returns the asynchronous clear handle and whether one is present.
func (l *Latch) Clear() (Handle, bool) { return l.clear, l.hasClear }

// Preset returns the asynchronous preset handle and whether one is present.
func (l *Latch) Preset() (Handle, bool) { return l.preset, l.hasPreset }
