package buffers

// Disposer is implemented by element types that hold resources which must be
// released when the value is dropped in place. ManuallyDrop invokes Dispose
// exactly once before the slot is cleared; values moved out with ReadValue
// are not disposed, since ownership transfers to the caller.
type Disposer interface {
	Dispose()
}

// disposeSlot runs the element's disposal hook, if any, and clears the slot
// so the garbage collector no longer sees references held by the old value.
// Pointer receivers are preferred so disposal can mutate the stored value.
func disposeSlot[T any](slot *T) {
	if d, ok := any(slot).(Disposer); ok {
		d.Dispose()
	} else if d, ok := any(*slot).(Disposer); ok {
		// Interface element types carry the disposer in the stored value.
		d.Dispose()
	}
	var zero T
	*slot = zero
}

// takeSlot moves the value out of the slot, clearing it without disposal.
func takeSlot[T any](slot *T) T {
	value := *slot
	var zero T
	*slot = zero
	return value
}
