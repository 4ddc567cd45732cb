// Package vector implements a growable indexed sequence on top of a buffer.
//
// A Vector owns exactly one buffer for its whole lifetime and is the only
// component that knows which slots are live: the contiguous region
// [0, Len()) holds constructed values, everything beyond is raw storage. All
// liveness bookkeeping, bounds checking and capacity negotiation happen
// here, once, so the buffer chain underneath stays check-free.
//
// The default buffer composition keeps up to eight elements inline, spills
// to the heap, and grows in powers of two:
//
//	v := vector.New[int]()
//	for i := 0; i < 1000; i++ {
//		if err := v.Push(i); err != nil { ... }
//	}
//	defer v.Close()
//
// A Vector is single-owner and not safe for concurrent use.
package vector
