package cutenum

import (
	"context"
	"sort"

	"github.com/go-techmap/techmap/sbjgraph"
)

// MinK is the smallest cut size this package will enumerate: a two-input
// logic node's non-trivial cut always needs at least its two direct
// fan-ins, so k=1 could never produce anything beyond trivial singleton
// cuts.
const MinK = 2

// MaxK is the largest cut size this package will enumerate. The
// backtracking search is exponential in k, so callers asking for more than
// this are almost certainly misusing the API; the original technology
// mappers this package is modeled on cap k at a small constant for the
// same reason.
const MaxK = 20

// Cut is a k-feasible cut: the ordered set of leaf handles whose
// combinational cone covers a root node's logic. Leaves are kept sorted by
// ascending NodeID so two cuts with the same leaf set compare equal under
// reflect.DeepEqual / slices.Equal.
type Cut struct {
	Root   sbjgraph.NodeID
	Leaves []sbjgraph.Handle
}

// Len returns the number of leaves in the cut.
func (c Cut) Len() int { return len(c.Leaves) }

// IsTrivial reports whether c is the trivial singleton cut of its own root.
func (c Cut) IsTrivial() bool {
	return len(c.Leaves) == 1 && c.Leaves[0].Node() == c.Root && !c.Leaves[0].Inv()
}

func sortLeaves(leaves []sbjgraph.Handle) {
	sort.Slice(leaves, func(i, j int) bool { return leaves[i].Node() < leaves[j].Node() })
}

// CutVisitor receives the cuts EnumerateCuts discovers, bracketed so a
// visitor can maintain per-graph and per-node accumulator state without
// its own synchronization: all calls for a single EnumerateCuts invocation
// happen on the calling goroutine, in the order documented below.
//
//	AllInit(g, k)
//	  NodeInit(root, pos)
//	    Found(root, leaves)   // called once per cut of root, including the
//	                          // trivial singleton {root}
//	  NodeEnd(root, pos, count)
//	  ... repeated for every node in topological order, pos increasing ...
//	AllEnd(g, k)
type CutVisitor interface {
	// AllInit is called once before any node is processed.
	AllInit(g *sbjgraph.Graph, k int)
	// NodeInit is called before a node's cuts are enumerated; pos is the
	// node's 0-based position in processing order.
	NodeInit(root sbjgraph.NodeID, pos int)
	// Found is called once per cut discovered for the current node.
	Found(root sbjgraph.NodeID, leaves []sbjgraph.Handle)
	// NodeEnd is called after a node's cuts are all enumerated; count is
	// the number of cuts found for that node.
	NodeEnd(root sbjgraph.NodeID, pos int, count int)
	// AllEnd is called once after every node has been processed.
	AllEnd(g *sbjgraph.Graph, k int)
}

type options struct {
	ctx context.Context
}

// Option configures EnumerateCuts.
type Option func(*options)

func defaultOptions() options { return options{ctx: context.Background()} }

// WithContext sets a context whose cancellation aborts enumeration early,
// returning ErrCanceled. This mirrors the teacher pack's
// dfs.WithContext/WithCancelContext cooperative-cancellation convention
// (`_examples/katalvlaran-lvlath/dfs`); this module's own trimmed `dfs`
// has no such option, since nothing cancels a cycle check or a
// topological sort mid-flight.
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}
