package mapgen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-techmap/techmap/cutenum"
	"github.com/go-techmap/techmap/maprecord"
	"github.com/go-techmap/techmap/patmatch"
	"github.com/go-techmap/techmap/sbjgraph"
)

// testCell is a minimal patmatch.Cell for building a toy library inline in
// each test: BUF, INV, AND2, XOR2 are enough to exercise every scenario
// spec.md's end-to-end list calls for.
type testCell struct {
	id    int
	pat   *patmatch.PatGraph
	cost  float64
}

func (c *testCell) ID() int                    { return c.id }
func (c *testCell) Pattern() *patmatch.PatGraph { return c.pat }
func (c *testCell) NumInputs() int              { return c.pat.NumInputs() }
func (c *testCell) Cost() float64               { return c.cost }

const (
	cellBuf = iota
	cellInv
	cellAnd2
	cellXor2
)

func testLibrary() []patmatch.Cell {
	bufPat := patmatch.NewPatGraph()
	bufPat.SetRoot(bufPat.NewInput())

	invPat := patmatch.NewPatGraph()
	invPat.SetRoot(invPat.NewInput().Not())

	andPat := patmatch.NewPatGraph()
	a, b := andPat.NewInput(), andPat.NewInput()
	andPat.SetRoot(andPat.NewAnd(a, b))

	xorPat := patmatch.NewPatGraph()
	x, y := xorPat.NewInput(), xorPat.NewInput()
	xorPat.SetRoot(xorPat.NewXor(x, y))

	return []patmatch.Cell{
		&testCell{id: cellBuf, pat: bufPat, cost: 1},
		&testCell{id: cellInv, pat: invPat, cost: 1},
		&testCell{id: cellAnd2, pat: andPat, cost: 2},
		&testCell{id: cellXor2, pat: xorPat, cost: 3},
	}
}

func TestMap_EmptyNetwork(t *testing.T) {
	net, err := Generate(nil, maprecord.NewRecord())
	require.NoError(t, err)
	require.Empty(t, net.Instances)
	require.Empty(t, net.Ports)
}

func TestMap_Buffer(t *testing.T) {
	sg := sbjgraph.NewGraph()
	in := sg.NewInput(true)
	outID, err := sg.NewOutput(in)
	require.NoError(t, err)
	_, err = sg.AddPort("a", []sbjgraph.NodeID{in.Node()})
	require.NoError(t, err)
	_, err = sg.AddPort("y", []sbjgraph.NodeID{outID})
	require.NoError(t, err)

	net, err := Map(sg, 4, testLibrary(), nil, maprecord.NewRecord())
	require.NoError(t, err)
	require.Len(t, net.Instances, 1)
	require.Equal(t, maprecord.CellID(cellBuf), net.Instances[0].Cell)
	require.True(t, net.Instances[0].Inputs[0].PrimaryInput)
	require.Equal(t, in.Node(), net.Instances[0].Inputs[0].InputNode)

	require.Len(t, net.Ports, 2)
	var yPort *MappedPort
	for i := range net.Ports {
		if net.Ports[i].Name == "y" {
			yPort = &net.Ports[i]
		}
	}
	require.NotNil(t, yPort)
	require.Equal(t, InstanceID(0), yPort.Bits[0].Instance)
}

func TestMap_Inverter(t *testing.T) {
	sg := sbjgraph.NewGraph()
	in := sg.NewInput(true)
	outID, err := sg.NewOutput(in.Not())
	require.NoError(t, err)
	_, err = sg.AddPort("y", []sbjgraph.NodeID{outID})
	require.NoError(t, err)

	net, err := Map(sg, 4, testLibrary(), nil, maprecord.NewRecord())
	require.NoError(t, err)
	require.Len(t, net.Instances, 1)
	require.Equal(t, maprecord.CellID(cellInv), net.Instances[0].Cell)
	require.True(t, net.Instances[0].Inputs[0].PrimaryInput)
}

func TestMap_And2(t *testing.T) {
	sg := sbjgraph.NewGraph()
	a := sg.NewInput(true)
	b := sg.NewInput(true)
	and, err := sg.NewAnd(a, b)
	require.NoError(t, err)
	outID, err := sg.NewOutput(and)
	require.NoError(t, err)
	_, err = sg.AddPort("y", []sbjgraph.NodeID{outID})
	require.NoError(t, err)

	net, err := Map(sg, 4, testLibrary(), nil, maprecord.NewRecord())
	require.NoError(t, err)
	require.Len(t, net.Instances, 1)
	require.Equal(t, maprecord.CellID(cellAnd2), net.Instances[0].Cell)
	require.Len(t, net.Instances[0].Inputs, 2)
	require.True(t, net.Instances[0].Inputs[0].PrimaryInput)
	require.True(t, net.Instances[0].Inputs[1].PrimaryInput)
}

// TestMap_FullAdderSum covers the sum bit of a full adder, s = a XOR b XOR
// cin, built as two chained XOR2 matches since the toy library has no
// native XOR3 cell.
func TestMap_FullAdderSum(t *testing.T) {
	sg := sbjgraph.NewGraph()
	a := sg.NewInput(true)
	b := sg.NewInput(true)
	cin := sg.NewInput(true)
	ab, err := sg.NewXor(a, b)
	require.NoError(t, err)
	sum, err := sg.NewXor(ab, cin)
	require.NoError(t, err)
	outID, err := sg.NewOutput(sum)
	require.NoError(t, err)
	_, err = sg.AddPort("s", []sbjgraph.NodeID{outID})
	require.NoError(t, err)

	net, err := Map(sg, 4, testLibrary(), nil, maprecord.NewRecord())
	require.NoError(t, err)
	require.Len(t, net.Instances, 2)
	for _, inst := range net.Instances {
		require.Equal(t, maprecord.CellID(cellXor2), inst.Cell)
	}
}

// TestMap_RegisteredOutput covers a D flip-flop whose Q drives a primary
// output directly (the PPI natural-polarity shortcut) and whose D input is
// fed through an inverter.
func TestMap_RegisteredOutput(t *testing.T) {
	sg := sbjgraph.NewGraph()
	in := sg.NewInput(true)
	clk := sg.NewInput(true)
	d, err := sg.NewDFF(in.Not(), clk, sbjgraph.NoAsync, sbjgraph.NoAsync)
	require.NoError(t, err)
	outID, err := sg.NewOutput(d.DataOut())
	require.NoError(t, err)
	_, err = sg.AddPort("q", []sbjgraph.NodeID{outID})
	require.NoError(t, err)

	record := maprecord.NewRecord()
	record.SetDFFMatch(d.ID(), false, maprecord.CellID(100), cutenum.Cut{})

	net, err := Map(sg, 4, testLibrary(), nil, record)
	require.NoError(t, err)

	require.Len(t, net.DFFs, 1)
	require.Equal(t, maprecord.CellID(100), net.Instances[net.DFFs[0].Instance].Cell)
	require.Equal(t, maprecord.CellID(cellInv), net.Instances[net.DFFs[0].DataIn.Instance].Cell)
	require.True(t, net.Instances[net.DFFs[0].DataIn.Instance].Inputs[0].PrimaryInput)

	var qPort *MappedPort
	for i := range net.Ports {
		if net.Ports[i].Name == "q" {
			qPort = &net.Ports[i]
		}
	}
	require.NotNil(t, qPort)
	require.Equal(t, net.DFFs[0].Instance, qPort.Bits[0].Instance)
}
