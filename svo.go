package buffers

// SvoBuffer adds small-size optimization to a child buffer: it starts out
// serving every operation from an embedded region of smallSize slots and
// allocates nothing. The first grow request beyond smallSize spills: the
// child is grown to the requested capacity, every small-region value moves
// into the child at the same index, and from then on all operations forward
// to the child. A spilled buffer never reverts to the small region, even if
// shrunk back below smallSize.
type SvoBuffer[T any] struct {
	small   *InlineBuffer[T]
	child   Buffer[T]
	spilled bool
}

// NewSvo creates an SvoBuffer with smallSize embedded slots over child. The
// child is expected to start empty; its values before the spill are never
// observed.
func NewSvo[T any](smallSize int, child Buffer[T]) *SvoBuffer[T] {
	return &SvoBuffer[T]{small: NewInline[T](smallSize), child: child}
}

// Spilled reports whether operations are being served by the child buffer.
func (b *SvoBuffer[T]) Spilled() bool { return b.spilled }

func (b *SvoBuffer[T]) active() Buffer[T] {
	if b.spilled {
		return b.child
	}
	return b.small
}

// Unwrap returns the buffer currently serving operations.
func (b *SvoBuffer[T]) Unwrap() Buffer[T] { return b.active() }

// Capacity returns the small size until the spill, the child's capacity
// after.
func (b *SvoBuffer[T]) Capacity() int { return b.active().Capacity() }

// Ref returns a pointer to the slot at index.
func (b *SvoBuffer[T]) Ref(index int) *T { return b.active().Ref(index) }

// ReadValue moves the value out of the slot at index.
func (b *SvoBuffer[T]) ReadValue(index int) T { return b.active().ReadValue(index) }

// WriteValue stores value into the slot at index.
func (b *SvoBuffer[T]) WriteValue(index int, value T) { b.active().WriteValue(index, value) }

// ManuallyDrop disposes the value at index in place.
func (b *SvoBuffer[T]) ManuallyDrop(index int) { b.active().ManuallyDrop(index) }

// TryGrow is a no-op success while the request fits the small region. A
// larger request spills into the child: the child grows first, then all
// small-region slots move across, so a child failure leaves this buffer
// untouched.
func (b *SvoBuffer[T]) TryGrow(minCapacity int) (int, error) {
	if b.spilled {
		return b.child.TryGrow(minCapacity)
	}
	if minCapacity <= b.small.Capacity() {
		return b.small.Capacity(), nil
	}
	capacity, err := b.child.TryGrow(minCapacity)
	if err != nil {
		return b.small.Capacity(), err
	}
	moveValues[T](b.child, b.small, 0, 0, b.small.Capacity())
	b.spilled = true
	return capacity, nil
}

// TryShrink forwards to the child once spilled and is a no-op success
// before; the embedded region cannot be released.
func (b *SvoBuffer[T]) TryShrink(minCapacity int) (int, error) {
	if b.spilled {
		return b.child.TryShrink(minCapacity)
	}
	return b.small.Capacity(), nil
}

// Slice returns the storage window [start, end) of whichever region is
// active, when it is contiguous.
func (b *SvoBuffer[T]) Slice(start, end int) ([]T, bool) {
	return SliceOf(b.active(), start, end)
}
