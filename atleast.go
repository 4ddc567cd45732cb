package buffers

// AtLeastBuffer wraps a child buffer and guarantees that every growth step
// adds at least a fixed number of slots, preventing a long run of tiny
// reallocations. Shrink requests pass through unchanged.
type AtLeastBuffer[T any] struct {
	Buffer[T]
	step int
}

// NewAtLeast wraps child so every grow adds at least step slots.
func NewAtLeast[T any](step int, child Buffer[T]) *AtLeastBuffer[T] {
	if step < 1 {
		step = 1
	}
	return &AtLeastBuffer[T]{Buffer: child, step: step}
}

// Unwrap returns the child buffer.
func (b *AtLeastBuffer[T]) Unwrap() Buffer[T] { return b.Buffer }

// TryGrow raises minCapacity to current capacity plus the step when the
// request is smaller than that, then forwards it.
func (b *AtLeastBuffer[T]) TryGrow(minCapacity int) (int, error) {
	current := b.Buffer.Capacity()
	if minCapacity <= current {
		return current, nil
	}
	if minCapacity-current < b.step {
		minCapacity = current + b.step
	}
	return b.Buffer.TryGrow(minCapacity)
}
