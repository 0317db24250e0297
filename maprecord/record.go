package maprecord

import (
	"fmt"
	"sync"

	"github.com/go-techmap/techmap/cutenum"
	"github.com/go-techmap/techmap/sbjgraph"
)

// CellID names a library cell. It is an opaque handle as far as this
// package is concerned; patmatch.Cell.ID returns the same space of values.
type CellID int

// entry pairs the cell a (node, polarity) slot was bound to with the cut
// whose leaves feed that cell's inputs.
type entry struct {
	cell CellID
	cut  cutenum.Cut
}

// slotKey packs a dense index and an output polarity into a single map
// key, mirroring the original's `id*2+offset` indexing scheme.
func slotKey(idx int, inv bool) uint64 {
	k := uint64(idx) * 2
	if inv {
		k++
	}
	return k
}

// Record is the Map Recorder: a concurrency-safe table of which cell (and
// through which cut) currently covers each subject node, DFF, and latch,
// per output polarity.
type Record struct {
	mu sync.RWMutex

	node  map[uint64]entry
	dff   map[uint64]entry
	latch map[uint64]entry

	const0    CellID
	const0Set bool
	const1    CellID
	const1Set bool
}

// NewRecord returns an empty Record.
func NewRecord() *Record {
	return &Record{
		node:  make(map[uint64]entry),
		dff:   make(map[uint64]entry),
		latch: make(map[uint64]entry),
	}
}

// SetConst0 records the cell used to drive a permanently-low signal.
func (r *Record) SetConst0(cell CellID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.const0, r.const0Set = cell, true
}

// SetConst1 records the cell used to drive a permanently-high signal.
func (r *Record) SetConst1(cell CellID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.const1, r.const1Set = cell, true
}

// Const0 returns the recorded constant-zero cell, if any.
func (r *Record) Const0() (CellID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.const0, r.const0Set
}

// Const1 returns the recorded constant-one cell, if any.
func (r *Record) Const1() (CellID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.const1, r.const1Set
}

// SetLogicMatch records that cell, driven through cut, covers root at the
// given output polarity.
func (r *Record) SetLogicMatch(root sbjgraph.NodeID, inv bool, cell CellID, cut cutenum.Cut) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.node[slotKey(int(root), inv)] = entry{cell: cell, cut: cut}
}

// LogicMatch returns the cell and cut recorded for root at the given
// polarity, or ok=false if nothing has been recorded yet.
func (r *Record) LogicMatch(root sbjgraph.NodeID, inv bool) (CellID, cutenum.Cut, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.node[slotKey(int(root), inv)]
	return e.cell, e.cut, ok
}

// SetInvMatch records that the complementary polarity of root is covered
// by a dedicated inverter cell whose sole input is root's own natural
// output -- the synthetic single-leaf cut the original recorder builds
// when no logic cell directly produces the complement.
func (r *Record) SetInvMatch(root sbjgraph.NodeID, cell CellID) {
	cut := cutenum.Cut{Root: root, Leaves: []sbjgraph.Handle{sbjgraph.NewHandle(root, false)}}
	r.SetLogicMatch(root, true, cell, cut)
}

// SetDFFMatch records that cell, driven through cut, covers DFF dffID's Q
// output at the given polarity.
func (r *Record) SetDFFMatch(dffID int, inv bool, cell CellID, cut cutenum.Cut) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dff[slotKey(dffID, inv)] = entry{cell: cell, cut: cut}
}

// DFFMatch returns the cell and cut recorded for DFF dffID at the given
// polarity, or ok=false if nothing has been recorded yet.
func (r *Record) DFFMatch(dffID int, inv bool) (CellID, cutenum.Cut, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.dff[slotKey(dffID, inv)]
	return e.cell, e.cut, ok
}

// SetLatchMatch records that cell, driven through cut, covers latch
// latchID's Q output at the given polarity.
func (r *Record) SetLatchMatch(latchID int, inv bool, cell CellID, cut cutenum.Cut) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.latch[slotKey(latchID, inv)] = entry{cell: cell, cut: cut}
}

// LatchMatch returns the cell and cut recorded for latch latchID at the
// given polarity, or ok=false if nothing has been recorded yet.
func (r *Record) LatchMatch(latchID int, inv bool) (CellID, cutenum.Cut, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.latch[slotKey(latchID, inv)]
	return e.cell, e.cut, ok
}

// RequireLogicMatch is LogicMatch for callers that treat absence as fatal.
func (r *Record) RequireLogicMatch(root sbjgraph.NodeID, inv bool) (CellID, cutenum.Cut, error) {
	cell, cut, ok := r.LogicMatch(root, inv)
	if !ok {
		return 0, cutenum.Cut{}, fmt.Errorf("%w: node %d polarity %v", ErrNoMatch, root, inv)
	}
	return cell, cut, nil
}

// RequireDFFMatch is DFFMatch for callers that treat absence as fatal.
func (r *Record) RequireDFFMatch(dffID int, inv bool) (CellID, cutenum.Cut, error) {
	cell, cut, ok := r.DFFMatch(dffID, inv)
	if !ok {
		return 0, cutenum.Cut{}, fmt.Errorf("%w: dff %d polarity %v", ErrNoMatch, dffID, inv)
	}
	return cell, cut, nil
}

// RequireLatchMatch is LatchMatch for callers that treat absence as fatal.
func (r *Record) RequireLatchMatch(latchID int, inv bool) (CellID, cutenum.Cut, error) {
	cell, cut, ok := r.LatchMatch(latchID, inv)
	if !ok {
		return 0, cutenum.Cut{}, fmt.Errorf("%w: latch %d polarity %v", ErrNoMatch, latchID, inv)
	}
	return cell, cut, nil
}
