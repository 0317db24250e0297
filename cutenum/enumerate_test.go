package cutenum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-techmap/techmap/cutenum"
	"github.com/go-techmap/techmap/sbjgraph"
)

func TestEnumerateCuts_NilGraph(t *testing.T) {
	_, err := cutenum.EnumerateCuts(nil, 4, &recordingVisitor{})
	assert.ErrorIs(t, err, cutenum.ErrGraphNil)
}

func TestEnumerateCuts_InvalidK(t *testing.T) {
	g := sbjgraph.NewGraph()
	_, err := cutenum.EnumerateCuts(g, 0, &recordingVisitor{})
	assert.ErrorIs(t, err, cutenum.ErrInvalidK)

	_, err = cutenum.EnumerateCuts(g, cutenum.MaxK+1, &recordingVisitor{})
	assert.ErrorIs(t, err, cutenum.ErrInvalidK)
}

func TestEnumerateCuts_NilVisitor(t *testing.T) {
	g := sbjgraph.NewGraph()
	_, err := cutenum.EnumerateCuts(g, 4, nil)
	assert.ErrorIs(t, err, cutenum.ErrVisitorNil)
}

// buildChain builds a 3-deep AND chain: ((a AND b) AND c) AND d, returning
// the graph and the leaf input handles.
func buildChain(t *testing.T) (*sbjgraph.Graph, []sbjgraph.Handle, sbjgraph.Handle) {
	t.Helper()
	g := sbjgraph.NewGraph()
	a := g.NewInput(true)
	b := g.NewInput(true)
	c := g.NewInput(true)
	d := g.NewInput(true)

	ab, err := g.NewAnd(a, b)
	require.NoError(t, err)
	abc, err := g.NewAnd(ab, c)
	require.NoError(t, err)
	abcd, err := g.NewAnd(abc, d)
	require.NoError(t, err)

	return g, []sbjgraph.Handle{a, b, c, d}, abcd
}

func TestEnumerateCuts_EveryInputHasTrivialCut(t *testing.T) {
	g, leaves, root := buildChain(t)
	v := &recordingVisitor{byRoot: map[sbjgraph.NodeID][][]sbjgraph.Handle{}}
	_, err := cutenum.EnumerateCuts(g, 4, v)
	require.NoError(t, err)

	for _, l := range leaves {
		cuts := v.byRoot[l.Node()]
		require.Len(t, cuts, 1)
		assert.Equal(t, []sbjgraph.Handle{l.Normalize()}, cuts[0])
	}
	_ = root
}

func TestEnumerateCuts_RootHasTrivialSingletonCut(t *testing.T) {
	g, _, root := buildChain(t)
	v := &recordingVisitor{byRoot: map[sbjgraph.NodeID][][]sbjgraph.Handle{}}
	_, err := cutenum.EnumerateCuts(g, 4, v)
	require.NoError(t, err)

	found := false
	for _, c := range v.byRoot[root] {
		if len(c) == 1 && c[0] == sbjgraph.NewHandle(root, false) {
			found = true
		}
	}
	assert.True(t, found, "root must have its own trivial singleton cut")
}

func TestEnumerateCuts_KFeasibility(t *testing.T) {
	g, _, root := buildChain(t)
	const k = 3
	v := &recordingVisitor{byRoot: map[sbjgraph.NodeID][][]sbjgraph.Handle{}}
	_, err := cutenum.EnumerateCuts(g, k, v)
	require.NoError(t, err)

	for _, c := range v.byRoot[root] {
		assert.LessOrEqual(t, len(c), k)
	}
}

func TestEnumerateCuts_LeafDistinctness(t *testing.T) {
	g, _, root := buildChain(t)
	v := &recordingVisitor{byRoot: map[sbjgraph.NodeID][][]sbjgraph.Handle{}}
	_, err := cutenum.EnumerateCuts(g, 4, v)
	require.NoError(t, err)

	for _, c := range v.byRoot[root] {
		seen := map[sbjgraph.NodeID]bool{}
		for _, h := range c {
			assert.False(t, seen[h.Node()], "duplicate leaf node within a single cut")
			seen[h.Node()] = true
		}
	}
}

func TestEnumerateCuts_FullCutAtSufficientK(t *testing.T) {
	g, leaves, root := buildChain(t)
	v := &recordingVisitor{byRoot: map[sbjgraph.NodeID][][]sbjgraph.Handle{}}
	_, err := cutenum.EnumerateCuts(g, 4, v)
	require.NoError(t, err)

	wantLeafSet := map[sbjgraph.NodeID]bool{}
	for _, l := range leaves {
		wantLeafSet[l.Node()] = true
	}
	found := false
	for _, c := range v.byRoot[root] {
		if len(c) != len(leaves) {
			continue
		}
		gotSet := map[sbjgraph.NodeID]bool{}
		for _, h := range c {
			gotSet[h.Node()] = true
		}
		if equalSets(gotSet, wantLeafSet) {
			found = true
		}
	}
	assert.True(t, found, "expected the maximal 4-leaf cut to appear when k=4")
}

func equalSets(a, b map[sbjgraph.NodeID]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func TestEnumerateCuts_MonotonicCountInK(t *testing.T) {
	g, _, root := buildChain(t)
	countAt := func(k int) int {
		v := &recordingVisitor{byRoot: map[sbjgraph.NodeID][][]sbjgraph.Handle{}}
		_, err := cutenum.EnumerateCuts(g, k, v)
		require.NoError(t, err)
		return len(v.byRoot[root])
	}
	assert.LessOrEqual(t, countAt(2), countAt(3))
	assert.LessOrEqual(t, countAt(3), countAt(4))
}

func TestCollectCuts_MatchesVisitorCounts(t *testing.T) {
	g, _, root := buildChain(t)
	cuts, err := cutenum.CollectCuts(g, 4)
	require.NoError(t, err)

	v := &recordingVisitor{byRoot: map[sbjgraph.NodeID][][]sbjgraph.Handle{}}
	_, err = cutenum.EnumerateCuts(g, 4, v)
	require.NoError(t, err)

	assert.Len(t, cuts.Cuts(root), len(v.byRoot[root]))
}

type recordingVisitor struct {
	byRoot map[sbjgraph.NodeID][][]sbjgraph.Handle
}

func (r *recordingVisitor) AllInit(*sbjgraph.Graph, int)  {}
func (r *recordingVisitor) NodeInit(sbjgraph.NodeID, int) {}
func (r *recordingVisitor) NodeEnd(sbjgraph.NodeID, int, int) {}
func (r *recordingVisitor) AllEnd(*sbjgraph.Graph, int)   {}
func (r *recordingVisitor) Found(root sbjgraph.NodeID, leaves []sbjgraph.Handle) {
	cp := make([]sbjgraph.Handle, len(leaves))
	copy(cp, leaves)
	r.byRoot[root] = append(r.byRoot[root], cp)
}
