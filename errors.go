package buffers

import "errors"

var (
	// ErrCapacity is returned when a TryGrow or TryShrink request cannot be
	// satisfied, either because the raw-memory provider is exhausted or
	// because the buffer variant structurally refuses the request (for
	// example an InlineBuffer asked to grow past its fixed size). Callers do
	// not need to tell the two apart: the triggering operation fails and no
	// state changes.
	ErrCapacity = errors.New("buffers: capacity request cannot be satisfied")
)
