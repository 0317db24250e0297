package cutenum

import (
	"github.com/go-techmap/techmap/sbjgraph"
)

// nodeTemp is per-node scratch state for a single EnumerateCuts run. It is
// never attached to sbjgraph.Node so a Graph stays safely shareable across
// independent, concurrent enumerations.
//
// state/ancestor/boundary/cmark are only meaningful when gen equals the
// enumerator's current round stamp; touch() resets them to zero the first
// time a node is seen in a new round, which avoids an O(V) sweep between
// roots the way dfs's White/Gray/Black coloring avoids one between runs.
type nodeTemp struct {
	gen      uint32
	state    uint8 // 0 untouched, 1 on the frontier (internal), 2 committed as a leaf
	ancestor bool  // lies within the cover of one of the current root's two fanins
	boundary bool  // already a known leaf candidate of an ancestor cut
	cmark    bool  // belongs to at least one cut emitted for the current root
	cover    []sbjgraph.NodeID
}

type enumerator struct {
	g       *sbjgraph.Graph
	k       int
	visitor CutVisitor
	temp    []nodeTemp // indexed by NodeID
	curGen  uint32

	frontier    []sbjgraph.NodeID
	frontierInv []bool
	leaves      []sbjgraph.Handle

	root      sbjgraph.NodeID
	cutsFound int
	total     int
}

// touch returns id's scratch record, resetting it first if this is its
// first reference during the current round.
func (e *enumerator) touch(id sbjgraph.NodeID) *nodeTemp {
	t := &e.temp[id]
	if t.gen != e.curGen {
		t.gen = e.curGen
		t.state = 0
		t.ancestor = false
		t.boundary = false
		t.cmark = false
	}
	return t
}

// EnumerateCuts reports every k-feasible cut of every input and logic node
// in g, in topological order, to visitor. Primary inputs (and DFF/latch Q
// pseudo-inputs, since sbjgraph represents both as KindInput nodes) are
// reported with their trivial singleton cut only; output-kind sink nodes
// are not visited.
func EnumerateCuts(g *sbjgraph.Graph, k int, visitor CutVisitor, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if k < MinK || k > MaxK {
		return 0, ErrInvalidK
	}
	if visitor == nil {
		return 0, ErrVisitorNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &enumerator{
		g:       g,
		k:       k,
		visitor: visitor,
		temp:    make([]nodeTemp, g.NodeCount()+1),
		curGen:  1,
	}

	visitor.AllInit(g, k)
	pos := 0
	for _, id := range g.Inputs() {
		if err := o.ctx.Err(); err != nil {
			return e.total, ErrCanceled
		}
		visitor.NodeInit(id, pos)
		leaf := sbjgraph.NewHandle(id, false)
		visitor.Found(id, []sbjgraph.Handle{leaf})
		e.temp[id].cover = []sbjgraph.NodeID{id}
		e.total++
		visitor.NodeEnd(id, pos, 1)
		pos++
	}

	for _, id := range g.Logic() {
		if err := o.ctx.Err(); err != nil {
			return e.total, ErrCanceled
		}
		visitor.NodeInit(id, pos)
		if err := e.processNode(id); err != nil {
			return e.total, err
		}
		visitor.NodeEnd(id, pos, e.cutsFound)
		pos++
	}

	visitor.AllEnd(g, k)
	return e.total, nil
}

// CutSet groups every cut CollectCuts gathered, keyed by root node id.
type CutSet struct {
	byRoot map[sbjgraph.NodeID][]Cut
}

// Cuts returns the cuts discovered for root, or nil if root had none
// recorded. Every input and logic node of the enumerated graph has at
// least its trivial singleton cut; output-kind sink nodes have none.
func (s *CutSet) Cuts(root sbjgraph.NodeID) []Cut { return s.byRoot[root] }

// CollectCuts runs EnumerateCuts and returns every discovered cut grouped
// by root node, for callers that don't need a streaming visitor.
func CollectCuts(g *sbjgraph.Graph, k int, opts ...Option) (*CutSet, error) {
	c := &collector{byRoot: make(map[sbjgraph.NodeID][]Cut)}
	if _, err := EnumerateCuts(g, k, c, opts...); err != nil {
		return nil, err
	}
	return &CutSet{byRoot: c.byRoot}, nil
}

type collector struct {
	byRoot map[sbjgraph.NodeID][]Cut
}

func (c *collector) AllInit(*sbjgraph.Graph, int)      {}
func (c *collector) NodeInit(sbjgraph.NodeID, int)     {}
func (c *collector) NodeEnd(sbjgraph.NodeID, int, int) {}
func (c *collector) AllEnd(*sbjgraph.Graph, int)       {}
func (c *collector) Found(root sbjgraph.NodeID, leaves []sbjgraph.Handle) {
	cp := make([]sbjgraph.Handle, len(leaves))
	copy(cp, leaves)
	c.byRoot[root] = append(c.byRoot[root], Cut{Root: root, Leaves: cp})
}

// markCover tags every node in inode's cached cover as an ancestor of the
// node currently being processed. Mirrors EnumCut.cc's mark_cnode.
func (e *enumerator) markCover(inode sbjgraph.NodeID) {
	for _, id := range e.temp[inode].cover {
		e.touch(id).ancestor = true
	}
}

// processNode runs the backtracking search for a single logic node,
// caching its cover for use by its descendants.
func (e *enumerator) processNode(root sbjgraph.NodeID) error {
	node, err := e.g.Node(root)
	if err != nil {
		return err
	}

	e.curGen++
	e.markCover(node.Fanin(0).Node())
	e.markCover(node.Fanin(1).Node())

	markBoundary := func(id sbjgraph.NodeID) {
		t := e.touch(id)
		if !t.ancestor {
			return
		}
		n, nerr := e.g.Node(id)
		if nerr == nil && n.IsLogic() {
			f0, f1 := n.Fanin(0).Node(), n.Fanin(1).Node()
			if !e.touch(f0).ancestor || !e.touch(f1).ancestor {
				t.boundary = true
			}
		} else {
			t.boundary = true
		}
	}
	for _, id := range e.temp[node.Fanin(0).Node()].cover {
		markBoundary(id)
	}
	for _, id := range e.temp[node.Fanin(1).Node()].cover {
		markBoundary(id)
	}

	e.root = root
	e.cutsFound = 0
	e.frontier = e.frontier[:0]
	e.frontierInv = e.frontierInv[:0]
	e.leaves = e.leaves[:0]

	e.pushFrontier(root, false)
	e.enumRecur()
	_, _ = e.popFrontier()

	cover := e.gatherCover(root)
	e.temp[root].cover = cover

	return nil
}

func (e *enumerator) pushFrontier(id sbjgraph.NodeID, inv bool) {
	e.frontier = append(e.frontier, id)
	e.frontierInv = append(e.frontierInv, inv)
	e.touch(id).state = 1
}

func (e *enumerator) popFrontier() (sbjgraph.NodeID, bool) {
	n := len(e.frontier) - 1
	id, inv := e.frontier[n], e.frontierInv[n]
	e.frontier = e.frontier[:n]
	e.frontierInv = e.frontierInv[:n]
	return id, inv
}

// enumRecur is the backtracking search proper, ported from EnumCut.cc's
// enum_recur: pop a frontier node, try it both as a cut leaf and as an
// internal node to expand (pushing its own fan-ins), and report a cut
// whenever the frontier empties out. Returns whether the current call
// contributed at least one cut (used to set cmark on internal nodes, which
// seeds gatherCover).
func (e *enumerator) enumRecur() bool {
	if len(e.frontier) == 0 {
		leaves := make([]sbjgraph.Handle, len(e.leaves))
		copy(leaves, e.leaves)
		sortLeaves(leaves)
		for _, h := range leaves {
			e.touch(h.Node()).cmark = true
		}
		e.visitor.Found(e.root, leaves)
		e.total++
		e.cutsFound++
		return true
	}

	node, nodeInv := e.popFrontier()
	hasCuts := false

	if len(e.leaves) < e.k {
		e.touch(node).state = 2
		e.leaves = append(e.leaves, sbjgraph.NewHandle(node, nodeInv))
		if e.enumRecur() {
			hasCuts = true
		}
		e.leaves = e.leaves[:len(e.leaves)-1]
		e.touch(node).state = 1
	}

	n, _ := e.g.Node(node)
	if n.IsLogic() {
		savedFrontierLen := len(e.frontier)
		savedLeavesLen := len(e.leaves)

		pushed0, ok0 := e.tryPush(n.Fanin(0))
		pushed1, ok1 := false, true
		if ok0 {
			pushed1, ok1 = e.tryPush(n.Fanin(1))
		}
		if ok0 && ok1 {
			if e.enumRecur() {
				e.touch(node).cmark = true
				hasCuts = true
			}
		}
		if pushed1 {
			e.undoPush(n.Fanin(1).Node())
		}
		if pushed0 {
			e.undoPush(n.Fanin(0).Node())
		}
		e.frontier = e.frontier[:savedFrontierLen]
		e.frontierInv = e.frontierInv[:savedFrontierLen]
		e.leaves = e.leaves[:savedLeavesLen]
	}

	e.pushFrontier(node, nodeInv)
	return hasCuts
}

func (e *enumerator) tryPush(fanin sbjgraph.Handle) (pushed bool, ok bool) {
	id := fanin.Node()
	switch e.touch(id).state {
	case 1, 2:
		return false, true // already on the frontier or already a committed leaf
	}
	if !e.temp[id].boundary {
		e.pushFrontier(id, fanin.Inv())
		return true, true
	}
	if len(e.leaves) < e.k {
		e.touch(id).state = 2
		e.leaves = append(e.leaves, fanin)
		return true, true
	}
	return false, false
}

func (e *enumerator) undoPush(id sbjgraph.NodeID) {
	switch e.temp[id].state {
	case 1:
		e.popFrontier()
	case 2:
		e.leaves = e.leaves[:len(e.leaves)-1]
	}
	e.touch(id).state = 0
}

// gatherCover walks the cmark'd nodes reachable from root (clearing cmark
// as it goes) to build the cached cover list markCover uses for root's
// descendants, mirroring EnumCut.cc's set_cut_node_list_recur.
func (e *enumerator) gatherCover(root sbjgraph.NodeID) []sbjgraph.NodeID {
	var cover []sbjgraph.NodeID
	var walk func(id sbjgraph.NodeID)
	walk = func(id sbjgraph.NodeID) {
		t := e.touch(id)
		if !t.cmark {
			return
		}
		t.cmark = false
		cover = append(cover, id)
		n, err := e.g.Node(id)
		if err != nil || !n.IsLogic() {
			return
		}
		walk(n.Fanin(0).Node())
		walk(n.Fanin(1).Node())
	}
	e.touch(root).cmark = true
	walk(root)
	return cover
}
