// Package buffers decomposes collection memory management into a composable
// buffer abstraction: a buffer acquires and releases raw storage and reads or
// writes values at an index, while the collection on top of it decides what is
// stored where and which indices hold live values.
//
// # Model
//
// A Buffer exposes up to Capacity() slots for a fixed element type. It never
// tracks which slots are filled; that bookkeeping belongs to exactly one
// owning collection. The contract is:
//
//   - Indices in [0, Capacity()) are valid.
//   - WriteValue fills an empty slot; ReadValue moves a value out and empties
//     the slot; ManuallyDrop disposes a filled slot in place.
//   - Before a buffer is released, every slot must be empty again.
//
// Callers guarantee these preconditions; buffers do not check them. A
// violation is a programming error and may panic.
//
// # Composition
//
// Leaf buffers (InlineBuffer, HeapBuffer, ZstBuffer) terminate a chain by
// touching actual storage. Composite buffers (SvoBuffer,
// ExponentialGrowthBuffer, AtLeastBuffer, Zsto, ForwardBuffer) wrap a child
// buffer and rewrite one policy before forwarding. Layer order is meaningful:
//
//	// Rounds the spill target up to a power of two.
//	buffers.NewExponentialGrowth(buffers.NewSvo[int](8, buffers.NewHeap[int]()))
//
//	// Only rounds growth after spilling.
//	buffers.NewSvo[int](8, buffers.NewExponentialGrowth(buffers.NewHeap[int]()))
//
// # Collections
//
// The vector package drives a buffer as a growable indexed sequence; the slab
// package drives one with non-contiguous, bitmap-tracked liveness. Any new
// collection can be built on the same contract.
package buffers
