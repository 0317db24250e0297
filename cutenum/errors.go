package cutenum

import "errors"

var (
	// ErrGraphNil is returned when EnumerateCuts is called with a nil graph.
	ErrGraphNil = errors.New("cutenum: graph is nil")

	// ErrInvalidK is returned when k is outside [MinK, MaxK].
	ErrInvalidK = errors.New("cutenum: k out of range")

	// ErrVisitorNil is returned when EnumerateCuts is called with a nil visitor.
	ErrVisitorNil = errors.New("cutenum: visitor is nil")

	// ErrCanceled is returned when the enumeration's context is canceled
	// mid-traversal (see WithContext).
	ErrCanceled = errors.New("cutenum: canceled")
)
