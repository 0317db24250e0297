package patmatch

import (
	"github.com/go-techmap/techmap/sbjgraph"
)

// matcher holds the state a single Match search mutates: which pattern
// leaf positions are bound to which subject handles, and the undo stack
// recording bind order so a failed branch can roll back exactly what it
// did and nothing more.
type matcher struct {
	sg      *sbjgraph.Graph
	pat     *PatGraph
	leafSet map[sbjgraph.NodeID]bool

	binding []sbjgraph.Handle
	bound   []bool
	undo    []int
}

func (m *matcher) resetBindings() {
	for i := range m.bound {
		m.bound[i] = false
	}
	m.undo = m.undo[:0]
}

func (m *matcher) rollback(mark int) {
	for i := len(m.undo) - 1; i >= mark; i-- {
		m.bound[m.undo[i]] = false
	}
	m.undo = m.undo[:mark]
}

// bind records p's formal input position as corresponding to s, or checks
// consistency against an existing binding for the same position.
func (m *matcher) bind(idx int, s sbjgraph.Handle, pInv bool) bool {
	reqInv := s.Inv() != pInv
	if m.bound[idx] {
		b := m.binding[idx]
		return b.Node() == s.Node() && b.Inv() == reqInv
	}
	m.binding[idx] = sbjgraph.NewHandle(s.Node(), reqInv)
	m.bound[idx] = true
	m.undo = append(m.undo, idx)
	return true
}

// match walks pattern handle p and subject handle s in lockstep. A subject
// node is a match boundary exactly when it belongs to the cut's leaf set;
// the pattern side must bottom out at a PatInput in the very same step, or
// the two structures have disagreed about where the cone ends.
func (m *matcher) match(p PatHandle, s sbjgraph.Handle) bool {
	pn := m.pat.Node(p.Node())
	sIsLeaf := m.leafSet[s.Node()]
	pIsInput := pn.Kind() == PatInput
	if sIsLeaf != pIsInput {
		return false
	}
	if sIsLeaf {
		return m.bind(pn.LeafIndex(), s, p.Inv())
	}

	sn, err := m.sg.Node(s.Node())
	if err != nil || !sn.IsLogic() {
		return false
	}

	switch pn.Kind() {
	case PatAnd:
		if sn.Kind() != sbjgraph.KindAnd || p.Inv() != s.Inv() {
			return false
		}
		return m.tryAnd(pn, sn)
	case PatXor:
		if sn.Kind() != sbjgraph.KindXor {
			return false
		}
		return m.tryXor(pn, sn, p.Inv() != s.Inv())
	default:
		return false
	}
}

// tryAnd tries both fan-in orderings, since AND is commutative and the
// pattern author's child order need not agree with the subject's.
func (m *matcher) tryAnd(pn *PatNode, sn *sbjgraph.Node) bool {
	mark := len(m.undo)
	if m.match(pn.Fanin(0), sn.Fanin(0)) && m.match(pn.Fanin(1), sn.Fanin(1)) {
		return true
	}
	m.rollback(mark)
	if m.match(pn.Fanin(0), sn.Fanin(1)) && m.match(pn.Fanin(1), sn.Fanin(0)) {
		return true
	}
	m.rollback(mark)
	return false
}

// tryXor tries both fan-in orderings and, when the accumulated inversion
// needs resolving, both children as the absorption target: XOR(a,b)' is
// equally XOR(a',b) or XOR(a,b'), and only one choice may be consistent
// with bindings already made elsewhere in the cone.
func (m *matcher) tryXor(pn *PatNode, sn *sbjgraph.Node, needAbsorb bool) bool {
	attempts := [][2]PatHandle{
		{pn.Fanin(0), pn.Fanin(1)},
		{pn.Fanin(1), pn.Fanin(0)},
	}
	if needAbsorb {
		attempts = [][2]PatHandle{
			{pn.Fanin(0).Not(), pn.Fanin(1)},
			{pn.Fanin(1).Not(), pn.Fanin(0)},
			{pn.Fanin(0), pn.Fanin(1).Not()},
			{pn.Fanin(1), pn.Fanin(0).Not()},
		}
	}
	for _, a := range attempts {
		mark := len(m.undo)
		if m.match(a[0], sn.Fanin(0)) && m.match(a[1], sn.Fanin(1)) {
			return true
		}
		m.rollback(mark)
	}
	return false
}

// Match tries to structurally bind pat's formal inputs to the leaves of
// the subject cut rooted at root, trying both achievable output
// polarities. On success it returns the binding (indexed by pattern input
// position), the output polarity the match was found at, and ok=true. A
// false ok with a nil error means the cut's shape simply does not match
// this pattern, which is the expected outcome for most (cut, cell) pairs
// during a real search and is not treated as an error.
func Match(sg *sbjgraph.Graph, root sbjgraph.NodeID, leaves []sbjgraph.Handle, pat *PatGraph) ([]sbjgraph.Handle, bool, bool, error) {
	if pat == nil {
		return nil, false, false, ErrPatternNil
	}
	if len(leaves) != pat.NumInputs() {
		return nil, false, false, ErrLeafCountMismatch
	}

	leafSet := make(map[sbjgraph.NodeID]bool, len(leaves))
	for _, l := range leaves {
		leafSet[l.Node()] = true
	}

	m := &matcher{
		sg:      sg,
		pat:     pat,
		leafSet: leafSet,
		binding: make([]sbjgraph.Handle, pat.NumInputs()),
		bound:   make([]bool, pat.NumInputs()),
	}

	for _, wantInv := range [2]bool{false, true} {
		m.resetBindings()
		if m.match(pat.Root(), sbjgraph.NewHandle(root, wantInv)) {
			out := make([]sbjgraph.Handle, len(m.binding))
			copy(out, m.binding)
			return out, wantInv, true, nil
		}
	}
	return nil, false, false, nil
}
