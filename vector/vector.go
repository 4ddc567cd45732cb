package vector

import (
	"errors"
	"fmt"
	"iter"

	"github.com/mangelats/buffers"
)

// DefaultSmallSize is the inline capacity of the default buffer composition.
const DefaultSmallSize = 8

var (
	// ErrOutOfRange is returned when an index is not less than the vector's
	// length.
	ErrOutOfRange = errors.New("vector: index out of range")
)

// DefaultBuffer returns the buffer composition a Vector uses unless given
// another one: zero-size elision over power-of-two growth over a small-size
// region of DefaultSmallSize slots spilling to the heap. Note the layer
// order: growth rounding applies to the spill target too.
func DefaultBuffer[T any]() buffers.Buffer[T] {
	return buffers.Zsto[T](
		buffers.NewExponentialGrowth[T](
			buffers.NewSvo[T](DefaultSmallSize, buffers.NewHeap[T]()),
		),
	)
}

// Vector is a growable indexed sequence of T backed by a single buffer.
type Vector[T any] struct {
	buf    buffers.Buffer[T]
	length int
}

// New creates an empty Vector on the default buffer composition.
func New[T any]() *Vector[T] {
	return NewWith(DefaultBuffer[T]())
}

// NewWith creates an empty Vector owning buf. The buffer must be empty and
// must not be shared with any other collection.
func NewWith[T any](buf buffers.Buffer[T]) *Vector[T] {
	return &Vector[T]{buf: buf}
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.length }

// Cap returns the buffer's current capacity.
func (v *Vector[T]) Cap() int { return v.buf.Capacity() }

// Push appends value. When the buffer is full it negotiates more capacity
// first; if that fails the vector is unchanged and the error wraps
// buffers.ErrCapacity.
func (v *Vector[T]) Push(value T) error {
	if err := v.ensure(v.length + 1); err != nil {
		return err
	}
	v.buf.WriteValue(v.length, value)
	v.length++
	return nil
}

// Pop removes and returns the last element. It reports false on an empty
// vector.
func (v *Vector[T]) Pop() (T, bool) {
	if v.length == 0 {
		var zero T
		return zero, false
	}
	v.length--
	return v.buf.ReadValue(v.length), true
}

// At returns a copy of the element at index i.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.length {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, v.length)
	}
	return *v.buf.Ref(i), nil
}

// Ref returns a pointer to the element at index i. The pointer is valid
// until the next operation that can resize the buffer.
func (v *Vector[T]) Ref(i int) (*T, error) {
	if i < 0 || i >= v.length {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, v.length)
	}
	return v.buf.Ref(i), nil
}

// Set replaces the element at index i, disposing the previous value.
func (v *Vector[T]) Set(i int, value T) error {
	if i < 0 || i >= v.length {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, v.length)
	}
	v.buf.ManuallyDrop(i)
	v.buf.WriteValue(i, value)
	return nil
}

// Insert places value at index i, shifting [i, Len()) up one slot. i may
// equal Len(), making Insert an append.
func (v *Vector[T]) Insert(i int, value T) error {
	if i < 0 || i > v.length {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, v.length)
	}
	if err := v.ensure(v.length + 1); err != nil {
		return err
	}
	buffers.ShiftRight(v.buf, i, v.length, 1)
	v.buf.WriteValue(i, value)
	v.length++
	return nil
}

// Remove takes out and returns the element at index i, shifting
// (i, Len()) down one slot.
func (v *Vector[T]) Remove(i int) (T, error) {
	if i < 0 || i >= v.length {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, v.length)
	}
	value := v.buf.ReadValue(i)
	buffers.ShiftLeft(v.buf, i+1, v.length, 1)
	v.length--
	return value, nil
}

// Truncate disposes every element at index n and beyond, in index order.
// It does nothing when n >= Len().
func (v *Vector[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= v.length {
		return
	}
	buffers.DropRange(v.buf, n, v.length)
	v.length = n
}

// Clear disposes all elements, keeping the buffer's capacity.
func (v *Vector[T]) Clear() {
	v.Truncate(0)
}

// Reserve negotiates capacity for at least n additional elements, so the
// next n pushes cannot fail.
func (v *Vector[T]) Reserve(n int) error {
	if n <= 0 {
		return nil
	}
	return v.ensure(v.length + n)
}

// ShrinkToFit asks the buffer to release capacity beyond the current
// length. Buffers are free to keep more; the returned capacity reflects the
// outcome.
func (v *Vector[T]) ShrinkToFit() (int, error) {
	return v.buf.TryShrink(v.length)
}

// All iterates index/element pairs in index order. The vector must not be
// mutated during iteration.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, *v.buf.Ref(i)) {
				return
			}
		}
	}
}

// Close disposes every live element in index order and releases the
// buffer's storage. The buffer never tracks liveness, so this drain must
// happen here before the storage goes away.
func (v *Vector[T]) Close() error {
	buffers.DropRange(v.buf, 0, v.length)
	v.length = 0
	// Shrinking is an optimization; storage kept by a refusing buffer is
	// empty and safe to abandon.
	_, _ = v.buf.TryShrink(0)
	return nil
}

func (v *Vector[T]) ensure(capacity int) error {
	if capacity <= v.buf.Capacity() {
		return nil
	}
	if _, err := v.buf.TryGrow(capacity); err != nil {
		return fmt.Errorf("vector: cannot grow to %d elements: %w", capacity, err)
	}
	return nil
}
