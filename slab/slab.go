package slab

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/mangelats/buffers"
)

var (
	// ErrNotFound is returned when the slot at an index is not live.
	ErrNotFound = errors.New("slab: no value at index")
	// ErrIndexSpace is returned when the slab outgrows its 32-bit index
	// space.
	ErrIndexSpace = errors.New("slab: index space exhausted")
)

// Slab stores values at stable indices on a single owned buffer. Liveness is
// tracked here, per slot, in a roaring bitmap; the buffer underneath knows
// nothing about which slots are filled.
type Slab[T any] struct {
	buf  buffers.Buffer[T]
	live *roaring.Bitmap
}

// New creates an empty Slab on the default vector buffer composition.
func New[T any]() *Slab[T] {
	return NewWith(buffers.Zsto[T](
		buffers.NewExponentialGrowth[T](buffers.NewHeap[T]()),
	))
}

// NewWith creates an empty Slab owning buf. The buffer must be empty and
// must not be shared.
func NewWith[T any](buf buffers.Buffer[T]) *Slab[T] {
	return &Slab[T]{buf: buf, live: roaring.New()}
}

// Len returns the number of live values.
func (s *Slab[T]) Len() int { return int(s.live.GetCardinality()) }

// Cap returns the buffer's current capacity.
func (s *Slab[T]) Cap() int { return s.buf.Capacity() }

// Contains reports whether index holds a live value.
func (s *Slab[T]) Contains(index int) bool {
	return index >= 0 && index <= math.MaxUint32 && s.live.Contains(uint32(index))
}

// Insert stores value at the lowest free index and returns that index,
// growing the buffer when every slot up to capacity is live.
func (s *Slab[T]) Insert(value T) (int, error) {
	index := s.lowestFree()
	if index > math.MaxUint32 {
		return 0, ErrIndexSpace
	}
	if index >= s.buf.Capacity() {
		if _, err := s.buf.TryGrow(index + 1); err != nil {
			return 0, fmt.Errorf("slab: cannot grow to %d slots: %w", index+1, err)
		}
	}
	s.buf.WriteValue(index, value)
	s.live.Add(uint32(index))
	return index, nil
}

// Get returns a copy of the value at index.
func (s *Slab[T]) Get(index int) (T, error) {
	if !s.Contains(index) {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrNotFound, index)
	}
	return *s.buf.Ref(index), nil
}

// Ref returns a pointer to the value at index, valid until the next
// operation that can resize the buffer.
func (s *Slab[T]) Ref(index int) (*T, error) {
	if !s.Contains(index) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, index)
	}
	return s.buf.Ref(index), nil
}

// Remove takes out and returns the value at index, leaving a hole.
func (s *Slab[T]) Remove(index int) (T, error) {
	if !s.Contains(index) {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrNotFound, index)
	}
	s.live.Remove(uint32(index))
	return s.buf.ReadValue(index), nil
}

// Delete disposes the value at index in place, leaving a hole. It reports
// whether a value was there.
func (s *Slab[T]) Delete(index int) bool {
	if !s.Contains(index) {
		return false
	}
	s.live.Remove(uint32(index))
	s.buf.ManuallyDrop(index)
	return true
}

// All iterates live index/value pairs in ascending index order. The slab
// must not be mutated during iteration.
func (s *Slab[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := s.live.Iterator()
		for it.HasNext() {
			index := int(it.Next())
			if !yield(index, *s.buf.Ref(index)) {
				return
			}
		}
	}
}

// Close disposes every live value in ascending index order and releases the
// buffer's storage.
func (s *Slab[T]) Close() error {
	it := s.live.Iterator()
	for it.HasNext() {
		s.buf.ManuallyDrop(int(it.Next()))
	}
	s.live.Clear()
	_, _ = s.buf.TryShrink(0)
	return nil
}

// lowestFree returns the smallest index not currently live.
func (s *Slab[T]) lowestFree() int {
	free := 0
	it := s.live.Iterator()
	for it.HasNext() && int(it.Next()) == free {
		free++
	}
	return free
}
