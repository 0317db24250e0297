package mindepth

import (
	"errors"
	"math"

	"github.com/go-techmap/techmap/cutenum"
	"github.com/go-techmap/techmap/sbjgraph"
)

var (
	// ErrGraphNil is returned when Label is called with a nil graph.
	ErrGraphNil = errors.New("mindepth: graph is nil")

	// ErrInvalidK is returned when k < 2: a two-input logic node can never
	// have a non-trivial cut smaller than 2 leaves, so k=1 can never label
	// anything beyond the primary inputs.
	ErrInvalidK = errors.New("mindepth: k must be at least 2")
)

// DepthResult holds the per-node minimum-depth labels computed by Label.
type DepthResult struct {
	labels   map[sbjgraph.NodeID]int
	maxDepth int
}

// Depth returns the minimum achievable depth of id, and whether id was
// labeled at all (every node reachable from Logic or Inputs always is).
func (r *DepthResult) Depth(id sbjgraph.NodeID) (int, bool) {
	d, ok := r.labels[id]
	return d, ok
}

// MaxDepth returns the greatest label assigned to any node.
func (r *DepthResult) MaxDepth() int { return r.maxDepth }

// Label computes minimum-depth labels for every node of g under
// k-feasible cuts.
func Label(g *sbjgraph.Graph, k int) (*DepthResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if k < 2 {
		return nil, ErrInvalidK
	}

	v := &depthVisitor{g: g, labels: make(map[sbjgraph.NodeID]int)}
	if _, err := cutenum.EnumerateCuts(g, k, v); err != nil {
		return nil, err
	}
	return &DepthResult{labels: v.labels, maxDepth: v.maxDepth}, nil
}

type depthVisitor struct {
	g      *sbjgraph.Graph
	labels map[sbjgraph.NodeID]int

	curRoot    sbjgraph.NodeID
	curIsLogic bool
	curBest    int

	maxDepth int
}

func (v *depthVisitor) AllInit(*sbjgraph.Graph, int) {}
func (v *depthVisitor) AllEnd(*sbjgraph.Graph, int)  {}

func (v *depthVisitor) NodeInit(root sbjgraph.NodeID, _ int) {
	v.curRoot = root
	n, err := v.g.Node(root)
	v.curIsLogic = err == nil && n.IsLogic()
	if v.curIsLogic {
		v.curBest = math.MaxInt
	} else {
		v.curBest = 0
	}
}

func (v *depthVisitor) Found(root sbjgraph.NodeID, leaves []sbjgraph.Handle) {
	if !v.curIsLogic {
		return // primary inputs/PPIs are depth 0 by definition
	}
	if len(leaves) == 1 && leaves[0].Node() == root {
		return // the trivial self-cut carries no mapping information
	}
	maxLeaf := 0
	for _, h := range leaves {
		if l := v.labels[h.Node()]; l > maxLeaf {
			maxLeaf = l
		}
	}
	if cand := maxLeaf + 1; cand < v.curBest {
		v.curBest = cand
	}
}

func (v *depthVisitor) NodeEnd(root sbjgraph.NodeID, _ int, _ int) {
	v.labels[root] = v.curBest
	if v.curBest > v.maxDepth {
		v.maxDepth = v.curBest
	}
}
