package buffers

import "github.com/mangelats/buffers/internal/typeinfo"

// Zsto (zero-size type optimization) selects between a ZstBuffer and the
// given child based solely on the element type's size. The branch is taken
// once, when the buffer is built: the element size is a property of the
// instantiated type, so the selected implementation is fixed for the
// buffer's whole lifetime and no per-operation check exists. For a zero-size
// element type the child is discarded untouched and none of its operations
// are ever invoked.
func Zsto[T any](child Buffer[T]) Buffer[T] {
	if typeinfo.IsZeroSize[T]() {
		return NewZst[T]()
	}
	return child
}
