package maprecord

import "errors"

// ErrNoMatch is returned by the Require* accessors when a caller demands a
// binding that was never recorded. Plain accessors (LogicMatch, DFFMatch,
// LatchMatch) never return it: absence is routine there.
var ErrNoMatch = errors.New("maprecord: no cell match recorded for this node and polarity")
