package core

import "errors"

var (
	// ErrInvalidSize reports a grid edge below MinSize or a size mismatch.
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrInvalidState reports an operation on a nil or zero-size grid.
	ErrInvalidState = errors.New("invalid grid state")
	// ErrInvalidProbability reports a seeding probability outside [0, 1].
	ErrInvalidProbability = errors.New("invalid alive probability")
)
