// Package mapgen is the Map Generator: it turns a populated maprecord.Record
// into a concrete mapped netlist by back-tracing from primary outputs and
// DFF/latch data inputs, instantiating cells on demand and reusing any
// (node, polarity) already realized.
//
// The package also supplies Map, the higher-level driver spec.md leaves
// unspecified ("the driver must supply a policy. Do not guess"): it runs
// the Cut Enumerator and Pattern Matcher against a cell library, resolves
// competing matches with a CostPolicy, writes the winners into a
// maprecord.Record, and finally calls Generate. Generate alone is exposed
// separately for callers who already have a populated Record from some
// other source and only need the back-trace phase.
package mapgen
