package buffertest

import "github.com/mangelats/buffers"

// Recorder forwards every operation to an inner buffer while recording the
// resize traffic, so tests can assert how a policy composite rewrites grow
// and shrink requests before they reach a leaf.
type Recorder[T any] struct {
	buffers.Buffer[T]

	// Grows counts TryGrow calls; GrowChanges counts the ones that actually
	// changed capacity.
	Grows       int
	GrowChanges int
	Shrinks     int
	// LastGrowTarget is the minCapacity of the most recent TryGrow call.
	LastGrowTarget int
}

// NewRecorder wraps inner.
func NewRecorder[T any](inner buffers.Buffer[T]) *Recorder[T] {
	return &Recorder[T]{Buffer: inner}
}

// Unwrap returns the inner buffer.
func (r *Recorder[T]) Unwrap() buffers.Buffer[T] { return r.Buffer }

// TryGrow records the request and forwards it.
func (r *Recorder[T]) TryGrow(minCapacity int) (int, error) {
	r.Grows++
	r.LastGrowTarget = minCapacity
	before := r.Buffer.Capacity()
	capacity, err := r.Buffer.TryGrow(minCapacity)
	if err == nil && capacity != before {
		r.GrowChanges++
	}
	return capacity, err
}

// TryShrink records the request and forwards it.
func (r *Recorder[T]) TryShrink(minCapacity int) (int, error) {
	r.Shrinks++
	return r.Buffer.TryShrink(minCapacity)
}
