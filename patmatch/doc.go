// Package patmatch structurally matches a subject-graph cut against a
// library cell's pattern graph, producing a binding from the pattern's
// input positions to the cut's leaf handles plus the output polarity the
// match was found at.
//
// What: PatGraph is a small, rooted AND/XOR DAG representing one cell's
// Boolean structure, built directly by a caller (a real cell-library
// loader is out of this module's scope; see SPEC_FULL.md §1). Match walks
// a PatGraph and a subject cone in lockstep, trying both AND child
// orderings and, for XOR, both orderings together with absorbing the
// accumulated inversion into either child, and rolls back exactly the
// leaf bindings a failed branch made.
//
// Why an explicit undo stack instead of a fresh binding table per branch:
// cell patterns are shallow but the number of branches tried (two
// orderings, sometimes combined with inversion absorption) is not, so
// undoing in place avoids reallocating a binding slice per attempt.
package patmatch
