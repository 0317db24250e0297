// Package sbjgraph implements the subject graph: a two-input AND/XOR
// Boolean network annotated with primary inputs/outputs, D-type flip-flops
// and latches, and named ports grouping individual bits.
//
// What:
//
//	A Graph holds a dense catalog of Node values addressed by NodeID,
//	plus the catalogs of inputs, outputs, DFFs, latches and ports layered
//	on top of them. Every two-input logic node's fan-in edges are
//	represented as Handle values (a NodeID paired with an inversion bit),
//	so inversions never need their own node.
//
// Why this shape:
//
//	Cut enumeration, pattern matching and map generation all need O(1)
//	random access to a node's fan-in/fan-out and O(1) polarity tests; a
//	dense array indexed by NodeID with side-table scratch state (used by
//	cutenum) is the representation the rest of this module is built
//	around.
//
// Key types: NodeID, Handle, Node, Port, DFF, Latch, Graph.
//
// Complexity: every constructor is O(1) amortized; Level is O(V) the
// first time after a mutation and O(1) while the graph is unchanged;
// Copy is O(V) with an explicit id remap.
//
// Errors: see errors.go for the sentinel values returned by this package.
//
// Concurrency: Graph guards its catalogs with a sync.RWMutex, matching
// this module's other generic container (see the core package), even
// though a single build pass is typically single-threaded; this keeps a
// Graph safe to inspect from a concurrent diagnostic or logging
// goroutine while a builder goroutine is still appending nodes.
package sbjgraph
