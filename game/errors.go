package game

import "errors"

var (
	// ErrIllegalMove is wrapped by every executor error. The state is left unchanged
	// whenever it is returned.
	ErrIllegalMove = errors.New("illegal move")

	// ErrConfiguration is wrapped by errors for configurations that cannot produce a
	// consistent initial state.
	ErrConfiguration = errors.New("invalid configuration")
)
