package alloc

import (
	"fmt"
	"unsafe"

	"github.com/mangelats/buffers/internal/mmap"
	"github.com/mangelats/buffers/internal/typeinfo"
)

// OffHeap is a provider backed by anonymous memory mappings, keeping regions
// entirely outside the garbage collector's view. It is restricted to element
// types without pointers: the collector cannot trace references stored in an
// unmanaged mapping, so NewOffHeap refuses pointer-bearing types.
type OffHeap[T any] struct {
	mappings map[unsafe.Pointer]*mmap.Mapping
}

// NewOffHeap creates an off-heap provider for T. It returns an error when T
// contains pointers.
func NewOffHeap[T any]() (*OffHeap[T], error) {
	if typeinfo.HasPointers[T]() {
		return nil, fmt.Errorf("alloc: off-heap storage requires a pointer-free element type, got %T", *new(T))
	}
	return &OffHeap[T]{mappings: make(map[unsafe.Pointer]*mmap.Mapping)}, nil
}

// Acquire maps a new region of n slots.
func (p *OffHeap[T]) Acquire(n int) ([]T, error) {
	if n < 0 {
		return nil, ErrExhausted
	}
	size := int(typeinfo.SizeOf[T]()) * n
	if size == 0 {
		// Zero slots, or a zero-size element type: no mapping needed.
		return make([]T, n), nil
	}
	m, err := mmap.MapAnon(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExhausted, err)
	}
	// Page-aligned mappings satisfy any Go type's alignment.
	base := unsafe.Pointer(&m.Bytes()[0])
	p.mappings[base] = m
	return unsafe.Slice((*T)(base), n), nil
}

// Release unmaps the region.
func (p *OffHeap[T]) Release(region []T) {
	if len(region) == 0 || typeinfo.SizeOf[T]() == 0 {
		return
	}
	base := unsafe.Pointer(&region[0])
	m, ok := p.mappings[base]
	if !ok {
		panic("alloc: release of a region not owned by this provider")
	}
	delete(p.mappings, base)
	_ = m.Close()
}

// Regrow maps a new region, copies the overlapping prefix, and unmaps the
// old region. The old region is untouched on failure.
func (p *OffHeap[T]) Regrow(region []T, n int) ([]T, error) {
	next, err := p.Acquire(n)
	if err != nil {
		return nil, err
	}
	copy(next, region)
	p.Release(region)
	return next, nil
}

// Close unmaps every region still held. Outstanding regions become invalid.
func (p *OffHeap[T]) Close() error {
	var firstErr error
	for base, m := range p.mappings {
		if err := m.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(p.mappings, base)
	}
	return firstErr
}
