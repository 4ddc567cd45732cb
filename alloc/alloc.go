package alloc

import "errors"

var (
	// ErrExhausted is returned when a provider cannot supply the requested
	// region.
	ErrExhausted = errors.New("alloc: memory exhausted")
)

// Provider acquires and releases raw storage regions for a fixed element
// type. Regions are addressed in slots; the provider derives byte size and
// alignment from T. Acquired regions are zeroed.
//
// A region handed out by Acquire or Regrow is owned by exactly one caller
// until passed back through Release or Regrow. Providers are not required to
// be safe for concurrent use.
type Provider[T any] interface {
	// Acquire returns a new region of exactly n slots, or ErrExhausted.
	Acquire(n int) ([]T, error)

	// Release returns a region previously obtained from this provider.
	// The caller must not use the region afterwards.
	Release(region []T)

	// Regrow replaces region with one of exactly n slots, carrying over the
	// contents of the first min(len(region), n) slots, and releases the old
	// region. On failure the old region is untouched and still owned by the
	// caller. Regrow with a nil region is equivalent to Acquire.
	Regrow(region []T, n int) ([]T, error)
}

// Heap is the default provider, backed by the Go runtime allocator. The zero
// value is ready to use.
type Heap[T any] struct{}

// Acquire returns a freshly made region of n slots.
func (Heap[T]) Acquire(n int) ([]T, error) {
	if n < 0 {
		return nil, ErrExhausted
	}
	return make([]T, n), nil
}

// Release drops the region reference; reclamation is the garbage
// collector's.
func (Heap[T]) Release(region []T) {}

// Regrow makes a new region and copies the overlapping prefix.
func (Heap[T]) Regrow(region []T, n int) ([]T, error) {
	if n < 0 {
		return nil, ErrExhausted
	}
	next := make([]T, n)
	copy(next, region)
	return next, nil
}
