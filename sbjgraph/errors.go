package sbjgraph

import "errors"

// Sentinel errors returned by this package. Wrap with fmt.Errorf("...: %w", ...)
// when additional context (an offending NodeID, a port name) is useful.
var (
	// ErrNodeNotFound indicates a NodeID that does not belong to the graph.
	ErrNodeNotFound = errors.New("sbjgraph: node not found")

	// ErrNotLogicNode indicates an operation that requires a two-input
	// logic node (AND/XOR) was given some other NodeKind. No function in
	// this package returns it.
	ErrNotLogicNode = errors.New("sbjgraph: node is not a two-input logic node")

	// ErrBadHandle names an invalid Handle. No function in this package
	// returns it: a constructor given a handle to a node outside the graph
	// returns ErrNodeNotFound.
	ErrBadHandle = errors.New("sbjgraph: invalid handle")

	// ErrEmptyExpr indicates NewExpr was called with zero leaves.
	ErrEmptyExpr = errors.New("sbjgraph: expression has no leaves")

	// ErrDuplicatePortBit indicates a port bit NodeID that is already a
	// member of another port.
	ErrDuplicatePortBit = errors.New("sbjgraph: node already belongs to a port")

	// ErrEmptyPortName indicates AddPort was called with an empty name.
	ErrEmptyPortName = errors.New("sbjgraph: port name is empty")

	// ErrPortBitNotOutput indicates an output port references a node that
	// is not an output-kind node.
	ErrPortBitNotOutput = errors.New("sbjgraph: port bit is not an output node")

	// ErrPortBitNotInput indicates an input port references a node that is
	// not an input-kind node.
	ErrPortBitNotInput = errors.New("sbjgraph: port bit is not an input node")

	// ErrCyclic is returned by ValidateTopology when the subject graph's
	// driver-to-consumer dependency relation contains a cycle.
	ErrCyclic = errors.New("sbjgraph: cyclic dependency among logic nodes")
)
