// Package alloc defines the raw-memory provider interface leaf buffers
// allocate through, plus the stock providers.
//
// A Provider hands out and takes back regions of uninitialized storage,
// addressed in slots of the element type; byte size and alignment are the
// provider's concern. Buffers never touch memory except through a Provider,
// which keeps the allocation facility injectable: tests swap in Quota to
// simulate exhaustion deterministically, and pointer-free workloads can use
// OffHeap to keep bulk storage out of the garbage collector's view.
package alloc
