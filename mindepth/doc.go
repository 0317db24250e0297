// Package mindepth labels every node of a sbjgraph.Graph with its minimum
// achievable depth under k-feasible cuts: the fewest k-input cells needed
// on any path from a primary input to that node, the classic depth-optimal
// technology-mapping metric.
//
// What: Label drives cutenum.EnumerateCuts with a CutVisitor that, for
// each node in topological order, takes the minimum over every
// non-trivial cut of (1 + the deepest already-labeled leaf), reusing
// every label it computes for later nodes exactly as a dynamic-programming
// sweep over a DAG in topological order does.
//
// Why reuse cutenum instead of a bespoke depth-bounded search: the
// feasibility question ("does some k-leaf cut rooted here achieve depth
// D") is answered by simply enumerating all k-feasible cuts once and
// taking a minimum, so a second backtracking implementation would just be
// EnumerateCuts again with extra bookkeeping.
package mindepth
