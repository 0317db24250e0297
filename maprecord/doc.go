// Package maprecord stores, per subject-graph node/DFF/latch and output
// polarity, which library cell (if any) currently covers it and through
// which cut. It is a pure lookup table: the Map Recorder records decisions
// the Pattern Matcher and Map Generator make, but never makes one itself.
//
// Every node/DFF/latch carries up to two independent slots, one per output
// polarity, since a tech-mapped netlist may need both a signal and its
// complement driven by different cells (or the same cell instance reused
// through a separate inverter). "No match recorded yet" is the routine
// state during a mapping pass, not a failure, so lookups return a boolean
// rather than an error. The Require* accessors turn absence into
// ErrNoMatch for callers that treat it as fatal; mapgen's back-trace uses
// the plain accessors and reports its own mapgen.ErrMissingMatch instead.
package maprecord
