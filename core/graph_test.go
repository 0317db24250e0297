package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-techmap/techmap/core"
)

func TestGraph_AddVertexIdempotent(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("a"))
	assert.Equal(t, 1, g.VertexCount())
}

func TestGraph_AddVertexEmptyID(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestGraph_AddEdgeUnknownVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	_, err := g.AddEdge("a", "b", 0)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_SuccessorsSortedAndCounts(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, v := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddVertex(v))
	}
	_, err := g.AddEdge("a", "c", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b", 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "c"}, g.Successors("a"))
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())
}
