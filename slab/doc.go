// Package slab implements a collection with stable indices and holes on top
// of a buffer.
//
// Where a vector's live region is the contiguous prefix [0, len), a Slab
// keeps liveness per slot in a roaring bitmap: removing an element leaves a
// hole, and inserts fill the lowest hole before growing. Indices therefore
// stay valid across unrelated removals, which suits handle-style usage.
//
// A Slab is single-owner and not safe for concurrent use.
package slab
