package buffers

import (
	"fmt"
	"math"

	"github.com/mangelats/buffers/internal/typeinfo"
)

// ZstBuffer is a leaf buffer specialized for zero-size element types such as
// struct{}. No value of such a type carries information, so the buffer stores
// nothing: capacity is the full index range, growing and shrinking always
// succeed, and reads and writes touch no memory. The liveness contract still
// applies conceptually; only its enforcement cost disappears.
type ZstBuffer[T any] struct {
	zero T
}

// NewZst creates a ZstBuffer. It panics when T occupies memory, since every
// operation would silently discard data.
func NewZst[T any]() *ZstBuffer[T] {
	if !typeinfo.IsZeroSize[T]() {
		panic(fmt.Sprintf("buffers: ZstBuffer requires a zero-size element type, got %T", *new(T)))
	}
	return &ZstBuffer[T]{}
}

// Capacity reports the full index range; no storage bounds it.
func (b *ZstBuffer[T]) Capacity() int { return math.MaxInt }

// Ref returns a pointer to the shared zero value. All values of a zero-size
// type are identical, so there is nothing to alias.
func (b *ZstBuffer[T]) Ref(index int) *T { return &b.zero }

// ReadValue returns the zero value.
func (b *ZstBuffer[T]) ReadValue(index int) T { return b.zero }

// WriteValue discards the value; it carries no information.
func (b *ZstBuffer[T]) WriteValue(index int, value T) {}

// ManuallyDrop is a no-op; zero-size values hold no resources to release.
func (b *ZstBuffer[T]) ManuallyDrop(index int) {}

// TryGrow succeeds immediately; the capacity already covers any request.
func (b *ZstBuffer[T]) TryGrow(minCapacity int) (int, error) { return math.MaxInt, nil }

// TryShrink succeeds immediately without changing capacity.
func (b *ZstBuffer[T]) TryShrink(minCapacity int) (int, error) { return math.MaxInt, nil }
