package buffers

// Derived buffer utilities. Each is semantically equivalent to the spelled
// out sequence of single-index operations; a contiguous fast path is used
// when the buffer chain exposes one. Preconditions mirror the single-index
// operations they stand for and are not checked.

// DropRange disposes every value in [start, end) in ascending index order,
// emptying the slots.
func DropRange[T any](b Buffer[T], start, end int) {
	for i := start; i < end; i++ {
		b.ManuallyDrop(i)
	}
}

// ShiftRight moves the values in [start, end) up by `by` slots, iterating
// from the highest index down. The destination slots must be empty and
// within capacity; afterwards the slots [start, start+by) are empty.
func ShiftRight[T any](b Buffer[T], start, end, by int) {
	if by == 0 || start >= end {
		return
	}
	if window, ok := SliceOf(b, start, end+by); ok {
		n := end - start
		copy(window[by:], window[:n])
		clear(window[:min(by, n)])
		return
	}
	for i := end - 1; i >= start; i-- {
		b.WriteValue(i+by, b.ReadValue(i))
	}
}

// ShiftLeft moves the values in [start, end) down by `by` slots, iterating
// from the lowest index up. The destination slots must be empty; afterwards
// the slots [end-by, end) are empty.
func ShiftLeft[T any](b Buffer[T], start, end, by int) {
	if by == 0 || start >= end {
		return
	}
	if window, ok := SliceOf(b, start-by, end); ok {
		n := end - start
		copy(window[:n], window[by:])
		clear(window[len(window)-min(by, n):])
		return
	}
	for i := start; i < end; i++ {
		b.WriteValue(i-by, b.ReadValue(i))
	}
}

// Swap exchanges the values of two filled slots.
func Swap[T any](b Buffer[T], i, j int) {
	if i == j {
		return
	}
	ri, rj := b.Ref(i), b.Ref(j)
	*ri, *rj = *rj, *ri
}

// moveValues transfers n values from src[srcStart:] into dst[dstStart:],
// emptying the source slots. Used when a composite migrates live values
// across a storage transition.
func moveValues[T any](dst, src Buffer[T], dstStart, srcStart, n int) {
	d, dok := SliceOf(dst, dstStart, dstStart+n)
	s, sok := SliceOf(src, srcStart, srcStart+n)
	if dok && sok {
		copy(d, s)
		clear(s)
		return
	}
	for i := 0; i < n; i++ {
		dst.WriteValue(dstStart+i, src.ReadValue(srcStart+i))
	}
}
