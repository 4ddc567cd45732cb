package buffers

// Buffer is the capability contract every buffer implementation satisfies.
// A buffer manages the space for up to Capacity() slots of T; it never knows
// which slots currently hold live values. That knowledge, and with it the
// responsibility for every precondition below, belongs to the single
// collection (or parent composite buffer) that owns the buffer.
//
// Index arguments must always be less than the current Capacity(). Slot
// liveness preconditions are stated per method. None of them are checked
// here: the owning collection already validates them once, and re-checking in
// every layer of a composition would defeat the abstraction. Violations are
// programming errors; depending on the variant they panic or silently
// corrupt, they are never reported as recoverable errors.
type Buffer[T any] interface {
	// Capacity returns the current number of addressable slots. It is pure
	// and safe to call at any time.
	Capacity() int

	// Ref returns a pointer to the slot at index without changing its
	// liveness. The slot must be filled. The pointer is valid until the next
	// successful TryGrow or TryShrink.
	Ref(index int) *T

	// ReadValue moves the value out of the slot at index and empties it.
	// The slot must be filled.
	ReadValue(index int) T

	// WriteValue stores value into the slot at index, taking ownership of
	// it. The slot must be empty.
	WriteValue(index int, value T)

	// ManuallyDrop disposes the value at index in place and empties the
	// slot. The slot must be filled. If the element implements Disposer its
	// Dispose method runs exactly once.
	ManuallyDrop(index int)

	// TryGrow requests that capacity become at least minCapacity and returns
	// the resulting capacity. On success every previously filled slot stays
	// filled with its original value at the same index; slots between the
	// old and new capacity are empty. On failure the buffer is unchanged.
	// There is no partially migrated state.
	TryGrow(minCapacity int) (int, error)

	// TryShrink requests that capacity be reduced toward minCapacity, as far
	// as the variant allows, and returns the resulting capacity. Slots at
	// indices >= minCapacity must already be empty. Shrinking is an
	// optimization; a no-op success is always a valid implementation. On
	// failure the buffer is unchanged.
	TryShrink(minCapacity int) (int, error)
}

// Contiguous is implemented by buffers whose slots may occupy a single
// contiguous region of memory. Slice exposes a window of that region for bulk
// moves and reports false when the storage is not currently contiguous (for
// example a ZstBuffer, which holds no storage at all). A returned slice
// aliases buffer storage and is invalidated by any successful TryGrow or
// TryShrink.
type Contiguous[T any] interface {
	Buffer[T]
	Slice(start, end int) ([]T, bool)
}

// Unwrapper is implemented by composite buffers that delegate storage to a
// child. SliceOf uses it to find a contiguous fast path through a chain of
// policy wrappers.
type Unwrapper[T any] interface {
	Unwrap() Buffer[T]
}

// SliceOf returns the contiguous storage window [start, end) of the buffer
// behind b, descending through policy wrappers. It reports false when the
// chain ends in a buffer without contiguous storage.
func SliceOf[T any](b Buffer[T], start, end int) ([]T, bool) {
	for {
		if c, ok := b.(Contiguous[T]); ok {
			return c.Slice(start, end)
		}
		u, ok := b.(Unwrapper[T])
		if !ok {
			return nil, false
		}
		b = u.Unwrap()
	}
}
