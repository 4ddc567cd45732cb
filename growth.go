package buffers

import "math/bits"

// ExponentialGrowthBuffer wraps a child buffer and rounds every grow request
// up to the smallest power of two that satisfies it, never below the child's
// current capacity. Over a sequence of N single-slot grow requests the child
// reallocates O(log N) times instead of O(N). Shrink requests pass through
// unrounded.
type ExponentialGrowthBuffer[T any] struct {
	Buffer[T]
}

// NewExponentialGrowth wraps child with power-of-two growth.
func NewExponentialGrowth[T any](child Buffer[T]) *ExponentialGrowthBuffer[T] {
	return &ExponentialGrowthBuffer[T]{Buffer: child}
}

// Unwrap returns the child buffer.
func (b *ExponentialGrowthBuffer[T]) Unwrap() Buffer[T] { return b.Buffer }

// TryGrow forwards the smallest power of two >= minCapacity to the child and
// returns the child's actual resulting capacity.
func (b *ExponentialGrowthBuffer[T]) TryGrow(minCapacity int) (int, error) {
	current := b.Buffer.Capacity()
	if minCapacity <= current {
		return current, nil
	}
	return b.Buffer.TryGrow(nextPowerOfTwo(minCapacity))
}

// nextPowerOfTwo returns the smallest power of two >= n, for n >= 1.
func nextPowerOfTwo(n int) int {
	return 1 << bits.Len(uint(n-1))
}
