package buffers

import "fmt"

// InlineBuffer is a leaf buffer with a fixed number of slots allocated once
// at construction. It never reallocates: TryGrow succeeds only for requests
// that already fit, and TryShrink never releases the embedded storage. It is
// the building block SvoBuffer uses for its small-size region.
type InlineBuffer[T any] struct {
	slots []T
}

// NewInline creates an InlineBuffer with exactly size slots.
func NewInline[T any](size int) *InlineBuffer[T] {
	if size < 0 {
		panic(fmt.Sprintf("buffers: negative inline size %d", size))
	}
	return &InlineBuffer[T]{slots: make([]T, size)}
}

// Capacity returns the fixed slot count.
func (b *InlineBuffer[T]) Capacity() int { return len(b.slots) }

// Ref returns a pointer to the slot at index.
func (b *InlineBuffer[T]) Ref(index int) *T { return &b.slots[index] }

// ReadValue moves the value out of the slot at index.
func (b *InlineBuffer[T]) ReadValue(index int) T { return takeSlot(&b.slots[index]) }

// WriteValue stores value into the slot at index.
func (b *InlineBuffer[T]) WriteValue(index int, value T) { b.slots[index] = value }

// ManuallyDrop disposes the value at index in place.
func (b *InlineBuffer[T]) ManuallyDrop(index int) { disposeSlot(&b.slots[index]) }

// TryGrow succeeds without effect when the request already fits the fixed
// capacity and fails otherwise; inline storage cannot be extended.
func (b *InlineBuffer[T]) TryGrow(minCapacity int) (int, error) {
	if minCapacity <= len(b.slots) {
		return len(b.slots), nil
	}
	return len(b.slots), fmt.Errorf("%w: inline buffer is fixed at %d slots, %d requested", ErrCapacity, len(b.slots), minCapacity)
}

// TryShrink is a no-op success; embedded storage cannot be released.
func (b *InlineBuffer[T]) TryShrink(minCapacity int) (int, error) {
	return len(b.slots), nil
}

// Slice returns the storage window [start, end).
func (b *InlineBuffer[T]) Slice(start, end int) ([]T, bool) {
	return b.slots[start:end], true
}
