package bnb

import "errors"

// Sentinel errors surfaced by Tree. Per §7, the core treats container
// access and arena exhaustion as programming errors: they are returned
// here (not panicked) so a caller or test can assert on them, but none
// of them are meant to be part of a recoverable retry loop.
var (
	// ErrNegativeNumNodes indicates NewTree was called with numNodes < 0.
	ErrNegativeNumNodes = errors.New("bnb: numNodes must be non-negative")

	// ErrInvalidStartNode indicates SetStartNode was given an index
	// outside [0, NumNodes()).
	ErrInvalidStartNode = errors.New("bnb: start node out of range")
)
