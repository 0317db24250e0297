package mapgen

import "errors"

// ErrMissingMatch is returned when back-trace needs a (node, polarity)
// binding that has no recorded match. A node with fan-out and no match is
// a fatal structural failure: the enumeration driver failed to cover a
// polarity something downstream actually needs.
var ErrMissingMatch = errors.New("mapgen: no recorded match for a node back-trace needs")

// ErrNoConstCell is returned when back-trace reaches a constant handle
// (Const0/Const1) but the record has no cell recorded for that constant.
var ErrNoConstCell = errors.New("mapgen: constant value needed but no const cell recorded")
