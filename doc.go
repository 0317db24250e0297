// Package techmap is a cut-based technology mapper: it covers a
// combinational/sequential Boolean network with cells from a target
// library, choosing a cover under a caller-supplied cost policy.
//
// The pipeline is laid out as a chain of independently usable packages:
//
//	sbjgraph  — the two-input AND/XOR subject graph (inputs, outputs, DFFs,
//	            latches, ports) that every later stage reads
//	cutenum   — k-feasible cut enumeration over a sbjgraph.Graph
//	patmatch  — structural matching of a library cell's pattern against an
//	            enumerated cut
//	maprecord — the per-(node, polarity) winning-match table a driver fills
//	            in and mapgen.Generate reads back
//	mapgen    — the driver (cut enumeration + matching + cost-policy
//	            arbitration) and the back-trace generator that turns a
//	            filled-in maprecord.Record into a MappedNetlist
//	mindepth  — minimum-depth labeling: the lowest depth any k-feasible
//	            cover can reach at each node; mapgen.Map does not consult it
//
// A typical caller builds a sbjgraph.Graph, supplies a []patmatch.Cell
// library, and calls mapgen.Map; Generate and the lower-level packages
// remain exported for callers that want to drive matching themselves.
package techmap
