package buffertest

import "testing"

// Tripwire is a buffer that fails the test on any use. It stands in for a
// child buffer that a composite must never touch, such as the child behind a
// zero-size-type branch.
type Tripwire[T any] struct {
	tb testing.TB
}

// NewTripwire creates a Tripwire reporting through tb.
func NewTripwire[T any](tb testing.TB) *Tripwire[T] {
	return &Tripwire[T]{tb: tb}
}

func (b *Tripwire[T]) trip(op string) {
	b.tb.Helper()
	b.tb.Fatalf("buffertest: unexpected %s on tripwire buffer", op)
}

func (b *Tripwire[T]) Capacity() int {
	b.trip("Capacity")
	return 0
}

func (b *Tripwire[T]) Ref(index int) *T {
	b.trip("Ref")
	return nil
}

func (b *Tripwire[T]) ReadValue(index int) T {
	b.trip("ReadValue")
	var zero T
	return zero
}

func (b *Tripwire[T]) WriteValue(index int, value T) {
	b.trip("WriteValue")
}

func (b *Tripwire[T]) ManuallyDrop(index int) {
	b.trip("ManuallyDrop")
}

func (b *Tripwire[T]) TryGrow(minCapacity int) (int, error) {
	b.trip("TryGrow")
	return 0, nil
}

func (b *Tripwire[T]) TryShrink(minCapacity int) (int, error) {
	b.trip("TryShrink")
	return 0, nil
}
