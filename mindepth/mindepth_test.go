package mindepth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-techmap/techmap/mindepth"
	"github.com/go-techmap/techmap/sbjgraph"
)

func TestLabel_NilGraph(t *testing.T) {
	_, err := mindepth.Label(nil, 4)
	assert.ErrorIs(t, err, mindepth.ErrGraphNil)
}

func TestLabel_KTooSmall(t *testing.T) {
	g := sbjgraph.NewGraph()
	_, err := mindepth.Label(g, 1)
	assert.ErrorIs(t, err, mindepth.ErrInvalidK)
}

func TestLabel_PrimaryInputsAreDepthZero(t *testing.T) {
	g := sbjgraph.NewGraph()
	a := g.NewInput(true)

	r, err := mindepth.Label(g, 4)
	require.NoError(t, err)
	d, ok := r.Depth(a.Node())
	require.True(t, ok)
	assert.Equal(t, 0, d)
}

func TestLabel_SingleLargeCutCollapsesDepth(t *testing.T) {
	// ((a AND b) AND c) AND d: depth 3 combinationally, but one k=4 cell covers
	// the whole cone, so minimum depth under k=4 is 1.
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

	r, err := mindepth.Label(g, 4)
	require.NoError(t, err)
	depth, ok := r.Depth(abcd.Node())
	require.True(t, ok)
	assert.Equal(t, 1, depth)
}

func TestLabel_SmallKForcesMultipleLevels(t *testing.T) {
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

	r, err := mindepth.Label(g, 2)
	require.NoError(t, err)
	depth, ok := r.Depth(abcd.Node())
	require.True(t, ok)
	assert.Equal(t, 3, depth)
}
