package mapgen

import (
	"github.com/go-techmap/techmap/maprecord"
	"github.com/go-techmap/techmap/sbjgraph"
)

// InstanceID addresses a single cell instance within a MappedNetlist.
type InstanceID int

// PinSource names where a cell input pin (or a port/DFF/latch data
// terminal) gets its signal from: either a live primary-input pin
// (nothing upstream was synthesized for it) or the output of another
// instance already placed in the netlist.
type PinSource struct {
	PrimaryInput bool
	InputNode    sbjgraph.NodeID // valid when PrimaryInput is true
	Instance     InstanceID      // valid when PrimaryInput is false
}

// Instance is one cell placed in the mapped netlist, with its input pins
// wired in the winning pattern's formal-input order.
type Instance struct {
	ID     InstanceID
	Cell   maprecord.CellID
	Inputs []PinSource
}

// MappedPortBit is one bit of a mapped port.
type MappedPortBit struct {
	PrimaryInput bool
	InputNode    sbjgraph.NodeID
	Instance     InstanceID
}

// MappedPort mirrors a subject-graph Port: same name, same bit order,
// each bit resolved to either a primary input pin or a driving instance.
type MappedPort struct {
	Name    string
	IsInput bool
	Bits    []MappedPortBit
}

// MappedDFF is a flip-flop instance plus the resolved source of its data
// input. Clock/Clear/Preset are passed through as the raw subject-graph
// handles they were built from: clock-tree and reset-network synthesis is
// outside technology mapping's scope.
type MappedDFF struct {
	SourceID  int
	Instance  InstanceID
	DataIn    PinSource
	Clock     sbjgraph.Handle
	Clear     sbjgraph.Handle
	HasClear  bool
	Preset    sbjgraph.Handle
	HasPreset bool
}

// MappedLatch is the level-sensitive counterpart of MappedDFF.
type MappedLatch struct {
	SourceID  int
	Instance  InstanceID
	DataIn    PinSource
	Enable    sbjgraph.Handle
	Clear     sbjgraph.Handle
	HasClear  bool
	Preset    sbjgraph.Handle
	HasPreset bool
}

// MappedNetlist is the Map Generator's output: a cell-instance netlist
// whose external boundary mirrors the subject graph it was generated from.
type MappedNetlist struct {
	Instances []*Instance
	Ports     []MappedPort
	DFFs      []MappedDFF
	Latches   []MappedLatch
}

// Candidate is one (cell, cut) pairing a CostPolicy chooses among for a
// single (node, polarity) slot.
type Candidate struct {
	Cell      maprecord.CellID
	NumLeaves int
	Cost      float64
}

// CostPolicy picks the winning candidate's index out of a non-empty slice.
// spec.md §4.4/§9 leaves the cost function to "the driver": this package
// supplies DefaultCostPolicy but Map accepts any caller-supplied policy.
type CostPolicy func(candidates []Candidate) int

// DefaultCostPolicy prefers the candidate with fewest cut leaves, then
// lowest cell cost, then lowest cell id for determinism when both tie.
func DefaultCostPolicy(candidates []Candidate) int {
	best := 0
	for i := 1; i < len(candidates); i++ {
		c, b := candidates[i], candidates[best]
		switch {
		case c.NumLeaves != b.NumLeaves:
			if c.NumLeaves < b.NumLeaves {
				best = i
			}
		case c.Cost != b.Cost:
			if c.Cost < b.Cost {
				best = i
			}
		case c.Cell < b.Cell:
			best = i
		}
	}
	return best
}
