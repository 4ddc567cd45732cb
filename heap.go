package buffers

import (
	"fmt"

	"github.com/mangelats/buffers/alloc"
)

// HeapBuffer is a leaf buffer holding one dynamically sized region obtained
// from a raw-memory provider. It starts at capacity zero with no region held.
// Growing and shrinking follow a move/release/adopt discipline: the provider
// supplies the replacement region with the old contents carried over, and on
// failure the buffer is left untouched.
type HeapBuffer[T any] struct {
	provider alloc.Provider[T]
	slots    []T
}

// NewHeap creates a HeapBuffer on the default Go heap provider.
func NewHeap[T any]() *HeapBuffer[T] {
	return NewHeapWith[T](alloc.Heap[T]{})
}

// NewHeapWith creates a HeapBuffer allocating through provider.
func NewHeapWith[T any](provider alloc.Provider[T]) *HeapBuffer[T] {
	return &HeapBuffer[T]{provider: provider}
}

// Capacity returns the size of the currently held region.
func (b *HeapBuffer[T]) Capacity() int { return len(b.slots) }

// Ref returns a pointer to the slot at index.
func (b *HeapBuffer[T]) Ref(index int) *T { return &b.slots[index] }

// ReadValue moves the value out of the slot at index.
func (b *HeapBuffer[T]) ReadValue(index int) T { return takeSlot(&b.slots[index]) }

// WriteValue stores value into the slot at index.
func (b *HeapBuffer[T]) WriteValue(index int, value T) { b.slots[index] = value }

// ManuallyDrop disposes the value at index in place.
func (b *HeapBuffer[T]) ManuallyDrop(index int) { disposeSlot(&b.slots[index]) }

// TryGrow replaces the region with one of at least minCapacity slots.
func (b *HeapBuffer[T]) TryGrow(minCapacity int) (int, error) {
	if minCapacity <= len(b.slots) {
		return len(b.slots), nil
	}
	next, err := b.provider.Regrow(b.slots, minCapacity)
	if err != nil {
		return len(b.slots), fmt.Errorf("%w: %w", ErrCapacity, err)
	}
	b.slots = next
	return len(b.slots), nil
}

// TryShrink replaces the region with one of minCapacity slots, releasing the
// current region entirely when minCapacity is zero.
func (b *HeapBuffer[T]) TryShrink(minCapacity int) (int, error) {
	if minCapacity >= len(b.slots) {
		return len(b.slots), nil
	}
	if minCapacity == 0 {
		b.provider.Release(b.slots)
		b.slots = nil
		return 0, nil
	}
	next, err := b.provider.Regrow(b.slots, minCapacity)
	if err != nil {
		return len(b.slots), fmt.Errorf("%w: %w", ErrCapacity, err)
	}
	b.slots = next
	return len(b.slots), nil
}

// Slice returns the storage window [start, end).
func (b *HeapBuffer[T]) Slice(start, end int) ([]T, bool) {
	return b.slots[start:end], true
}
