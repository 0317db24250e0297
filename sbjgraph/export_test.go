package sbjgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-techmap/techmap/sbjgraph"
)

func TestValidateTopology_AcyclicGraph(t *testing.T) {
	g := sbjgraph.NewGraph()
	a := g.NewInput(true)
	b := g.NewInput(true)
	ab, err := g.NewAnd(a, b)
	require.NoError(t, err)
	_, err = g.NewOutput(ab)
	require.NoError(t, err)

	assert.NoError(t, g.ValidateTopology())
}

func TestToCoreGraph_VertexAndEdgeCounts(t *testing.T) {
	g := sbjgraph.NewGraph()
	a := g.NewInput(true)
	b := g.NewInput(true)
	ab, err := g.NewAnd(a, b)
	require.NoError(t, err)
	_, err = g.NewOutput(ab)
	require.NoError(t, err)

	cg, err := g.ToCoreGraph()
	require.NoError(t, err)
	assert.Equal(t, g.NodeCount(), cg.VertexCount())
	// a->ab, b->ab, ab->output = 3 dependency edges.
	assert.Equal(t, 3, cg.EdgeCount())
}
