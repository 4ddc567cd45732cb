// Package mmap provides anonymous memory mappings for off-heap buffer
// storage.
//
// A Mapping is a read-write region obtained directly from the operating
// system, invisible to the Go garbage collector. The alloc package uses it to
// back raw-memory regions for pointer-free element types.
//
//	m, err := mmap.MapAnon(1 << 20)
//	if err != nil { ... }
//	defer m.Close()
//	buf := m.Bytes()
//
// On Unix systems mappings use mmap(2) with MAP_ANON|MAP_PRIVATE; on Windows
// they use VirtualAlloc with demand-paged commitment.
package mmap
