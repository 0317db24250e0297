package mapgen

import (
	"github.com/go-techmap/techmap/cutenum"
	"github.com/go-techmap/techmap/maprecord"
	"github.com/go-techmap/techmap/patmatch"
	"github.com/go-techmap/techmap/sbjgraph"
)

// findInverter locates a single-input cell whose pattern computes NOT(x):
// exactly one formal input, and the cell's output carries the opposite
// polarity of that input. This is the only cell maprecord.SetInvMatch ever
// needs, found once per Map call rather than guessed per node.
func findInverter(cells []patmatch.Cell) (maprecord.CellID, bool) {
	for _, cell := range cells {
		pat := cell.Pattern()
		if pat.NumInputs() != 1 {
			continue
		}
		root := pat.Root()
		if pat.Node(root.Node()).Kind() == patmatch.PatInput && root.Inv() {
			return maprecord.CellID(cell.ID()), true
		}
	}
	return 0, false
}

// selfSane rejects a binding that ties one of the pattern's own leaves back
// to root at a polarity other than the match's own output polarity. Only
// the trivial singleton cut ever lets a leaf's node equal root; a leaf
// bound to root's complement asks for a signal the cell itself would have
// to produce first, which is not a one-level structural match at all, just
// an artifact of the leaf-boundary check being polarity-agnostic.
func selfSane(root sbjgraph.NodeID, outInv bool, binding []sbjgraph.Handle) bool {
	for _, h := range binding {
		if h.Node() == root && h.Inv() != outInv {
			return false
		}
	}
	return true
}

// Map runs the full pipeline spec.md hands off to "the driver": cut
// enumeration, structural pattern matching against cells, cost-policy
// arbitration between competing matches, and finally back-trace
// instantiation. record is populated as a side effect and may already
// carry DFF/latch matches and const-cell ids the caller set up beforehand
// (Map never chooses those itself -- see DESIGN.md).
//
// A node's complement polarity is only ever sought directly through
// structural matching (a true NAND/XNOR-shaped cell, or XOR's inversion
// absorption); when no cell covers it that way, Map falls back to
// maprecord.SetInvMatch with the library's designated inverter, exactly as
// the original recorder does for any node lacking a direct complement
// cell.
func Map(sg *sbjgraph.Graph, k int, cells []patmatch.Cell, policy CostPolicy, record *maprecord.Record) (*MappedNetlist, error) {
	if policy == nil {
		policy = DefaultCostPolicy
	}

	cuts, err := cutenum.CollectCuts(sg, k)
	if err != nil {
		return nil, err
	}

	invCell, haveInv := findInverter(cells)

	ppiNaturalFree := make(map[sbjgraph.NodeID]bool)
	for _, d := range sg.DFFs() {
		ppiNaturalFree[d.DataOut().Node()] = true
	}
	for _, l := range sg.Latches() {
		ppiNaturalFree[l.DataOut().Node()] = true
	}

	type winner struct {
		cell maprecord.CellID
		cut  []sbjgraph.Handle
	}

	matchOne := func(root sbjgraph.NodeID, isLogic bool, wantInv bool) (winner, bool, error) {
		var winners []winner
		var candidates []Candidate

		for _, rootCut := range cuts.Cuts(root) {
			if isLogic && rootCut.IsTrivial() {
				continue // a logic node cannot be realized by wiring its own output back to itself
			}
			for _, cell := range cells {
				pat := cell.Pattern()
				if pat.NumInputs() != rootCut.Len() {
					continue
				}
				binding, outInv, ok, err := patmatch.Match(sg, root, rootCut.Leaves, pat)
				if err != nil {
					return winner{}, false, err
				}
				if !ok || outInv != wantInv || !selfSane(root, outInv, binding) {
					continue
				}
				winners = append(winners, winner{cell: maprecord.CellID(cell.ID()), cut: binding})
				candidates = append(candidates, Candidate{
					Cell:      maprecord.CellID(cell.ID()),
					NumLeaves: len(binding),
					Cost:      cell.Cost(),
				})
			}
		}

		if len(winners) == 0 {
			return winner{}, false, nil
		}
		return winners[policy(candidates)], true, nil
	}

	for root := sbjgraph.NodeID(1); int(root) <= sg.NodeCount(); root++ {
		n, err := sg.Node(root)
		if err != nil {
			return nil, err
		}
		if n.Kind() == sbjgraph.KindOutput {
			continue // pure sink, never a match root
		}
		isLogic := n.IsLogic()

		naturalFound := ppiNaturalFree[root]
		if !naturalFound {
			w, ok, err := matchOne(root, isLogic, false)
			if err != nil {
				return nil, err
			}
			if ok {
				record.SetLogicMatch(root, false, w.cell, cutenum.Cut{Root: root, Leaves: w.cut})
				naturalFound = true
			}
		}

		w, ok, err := matchOne(root, isLogic, true)
		if err != nil {
			return nil, err
		}
		if ok {
			record.SetLogicMatch(root, true, w.cell, cutenum.Cut{Root: root, Leaves: w.cut})
		} else if naturalFound && haveInv {
			record.SetInvMatch(root, invCell)
		}
	}

	return Generate(sg, record)
}
