package sbjgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-techmap/techmap/sbjgraph"
)

func TestCopy_IsStructurallyIndependent(t *testing.T) {
	g := sbjgraph.NewGraph()
	a := g.NewInput(true)
	b := g.NewInput(true)
	ab, err := g.NewAnd(a, b)
	require.NoError(t, err)
	_, err = g.NewOutput(ab)
	require.NoError(t, err)

	clone := g.Copy()
	assert.Equal(t, g.NodeCount(), clone.NodeCount())
	assert.Equal(t, g.Logic(), clone.Logic())

	// mutating the original after Copy must not affect the clone.
	c := g.NewInput(true)
	_, err = g.NewAnd(ab, c)
	require.NoError(t, err)

	assert.NotEqual(t, g.NodeCount(), clone.NodeCount())
	assert.Len(t, clone.Logic(), 1)
}

func TestCopy_PreservesFanout(t *testing.T) {
	g := sbjgraph.NewGraph()
	a := g.NewInput(true)
	b := g.NewInput(true)
	ab, err := g.NewAnd(a, b)
	require.NoError(t, err)

	clone := g.Copy()
	n, err := clone.Node(a.Node())
	require.NoError(t, err)
	assert.Contains(t, n.Fanout(), ab.Node())
}
