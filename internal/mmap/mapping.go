package mmap

import "errors"

var (
	// ErrInvalidSize is returned when a non-positive mapping size is requested.
	ErrInvalidSize = errors.New("mmap: invalid mapping size")
)

// Mapping is an anonymous read-write memory region obtained from the
// operating system. It owns the underlying bytes and is responsible for
// returning them; the region is not tracked by the garbage collector.
//
// A Mapping has a single owner and is not safe for concurrent use.
type Mapping struct {
	data  []byte
	size  int
	unmap func([]byte) error
}

// MapAnon creates an anonymous mapping of size bytes, zero-initialized.
func MapAnon(size int) (*Mapping, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	data, unmap, err := osMapAnon(size)
	if err != nil {
		return nil, err
	}
	return &Mapping{data: data, size: size, unmap: unmap}, nil
}

// Close returns the region to the operating system. It is idempotent.
// All slices previously returned by Bytes become invalid.
func (m *Mapping) Close() error {
	if m.data == nil {
		return nil
	}
	data := m.data
	m.data = nil
	return m.unmap(data)
}

// Bytes returns the mapped region, or nil after Close.
func (m *Mapping) Bytes() []byte { return m.data }

// Size returns the size of the mapping in bytes.
func (m *Mapping) Size() int { return m.size }
