package patmatch

import "errors"

// ErrPatternNil is returned when Match is called with a nil PatGraph.
var ErrPatternNil = errors.New("patmatch: pattern graph is nil")

// ErrLeafCountMismatch is returned when the supplied cut's leaf count
// cannot possibly match the pattern's input count, so the search is not
// even attempted.
var ErrLeafCountMismatch = errors.New("patmatch: leaf count does not match pattern input count")
