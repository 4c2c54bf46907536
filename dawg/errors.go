package dawg

import "errors"

var (
	// ErrOutOfRange is returned when an element is added to or a narrower
	// view is sliced from a sub-view whose range does not admit it.
	ErrOutOfRange = errors.New("dawg: element out of sub-view range")

	// ErrNotSupported is returned when a mutation is requested through a
	// facade backed by a read-only compact set.
	ErrNotSupported = errors.New("dawg: mutation of a compact set")
)
