package maprecord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-techmap/techmap/cutenum"
	"github.com/go-techmap/techmap/maprecord"
	"github.com/go-techmap/techmap/sbjgraph"
)

func TestRecord_LogicMatch_AbsentIsRoutine(t *testing.T) {
	r := maprecord.NewRecord()
	_, _, ok := r.LogicMatch(5, false)
	assert.False(t, ok)
}

func TestRecord_LogicMatch_SetAndGet(t *testing.T) {
	r := maprecord.NewRecord()
	cut := cutenum.Cut{Root: 5, Leaves: []sbjgraph.Handle{sbjgraph.NewHandle(1, false), sbjgraph.NewHandle(2, true)}}
	r.SetLogicMatch(5, false, maprecord.CellID(7), cut)

	cell, gotCut, ok := r.LogicMatch(5, false)
	require.True(t, ok)
	assert.Equal(t, maprecord.CellID(7), cell)
	assert.Equal(t, cut, gotCut)

	_, _, ok = r.LogicMatch(5, true)
	assert.False(t, ok, "the opposite polarity slot is independent")
}

func TestRecord_SetInvMatch_SyntheticCut(t *testing.T) {
	r := maprecord.NewRecord()
	r.SetInvMatch(9, maprecord.CellID(3))

	cell, cut, ok := r.LogicMatch(9, true)
	require.True(t, ok)
	assert.Equal(t, maprecord.CellID(3), cell)
	assert.Equal(t, sbjgraph.NodeID(9), cut.Root)
	require.Len(t, cut.Leaves, 1)
	assert.Equal(t, sbjgraph.NewHandle(9, false), cut.Leaves[0])
}

func TestRecord_DFFAndLatchMatch(t *testing.T) {
	r := maprecord.NewRecord()
	cut := cutenum.Cut{Root: 0}
	r.SetDFFMatch(2, false, maprecord.CellID(11), cut)
	r.SetLatchMatch(3, true, maprecord.CellID(12), cut)

	cell, _, ok := r.DFFMatch(2, false)
	require.True(t, ok)
	assert.Equal(t, maprecord.CellID(11), cell)

	_, _, ok = r.DFFMatch(2, true)
	assert.False(t, ok)

	cell, _, ok = r.LatchMatch(3, true)
	require.True(t, ok)
	assert.Equal(t, maprecord.CellID(12), cell)
}

func TestRecord_Consts(t *testing.T) {
	r := maprecord.NewRecord()
	_, ok := r.Const0()
	assert.False(t, ok)

	r.SetConst0(maprecord.CellID(1))
	r.SetConst1(maprecord.CellID(2))

	c0, ok := r.Const0()
	require.True(t, ok)
	assert.Equal(t, maprecord.CellID(1), c0)

	c1, ok := r.Const1()
	require.True(t, ok)
	assert.Equal(t, maprecord.CellID(2), c1)
}

func TestRecord_RequireLogicMatch(t *testing.T) {
	r := maprecord.NewRecord()
	_, _, err := r.RequireLogicMatch(4, false)
	assert.ErrorIs(t, err, maprecord.ErrNoMatch)

	r.SetLogicMatch(4, false, maprecord.CellID(6), cutenum.Cut{Root: 4})
	cell, _, err := r.RequireLogicMatch(4, false)
	require.NoError(t, err)
	assert.Equal(t, maprecord.CellID(6), cell)
}
