// Package cutenum enumerates k-feasible cuts of a sbjgraph.Graph: for
// every node R, every set of at most k leaf handles whose combinational
// cone covers exactly R's logic, reporting each cut to a caller-supplied
// CutVisitor as it is found.
//
// What: EnumerateCuts walks every node in topological order and runs a
// backtracking frontier search bounded by k over that node's fan-in cone;
// CollectCuts is a convenience wrapper that gathers every cut into memory
// for callers that don't need streaming.
//
// Why: The search needs per-node scratch state (which nodes are already
// part of the current frontier, which nodes belong to a node's previously
// computed cut cover) that must never live on sbjgraph.Node itself --
// sbjgraph.Graph is meant to be read concurrently by independent cut
// searches, so this package keeps all of that bookkeeping in
// enumerator-local side tables instead.
//
// Complexity: for a network of V two-input nodes, enumeration produces
// O(V) cuts in the worst case per node bounded by k, with the classic
// backtracking bound of roughly O(V * C(maxfanin, k)) total work.
//
// Errors: see errors.go.
package cutenum
