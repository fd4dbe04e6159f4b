package memtree

import (
	"errors"
)

var (
	// ErrInvariant is wrapped by every error Verify returns.
	ErrInvariant = errors.New("tree invariant violated")
)
