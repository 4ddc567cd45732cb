package buffers

// ForwardBuffer delegates every operation to a wrapped buffer. It exists so
// that any owned indirection over a buffer satisfies the contract without
// restating each method, and so composite buffers can be nested through
// ownership wrappers transparently. Policy composites embed their child the
// same way and override only the calls they rewrite.
type ForwardBuffer[T any] struct {
	Buffer[T]
}

// NewForward wraps inner in a transparent forwarding buffer.
func NewForward[T any](inner Buffer[T]) *ForwardBuffer[T] {
	return &ForwardBuffer[T]{Buffer: inner}
}

// Unwrap returns the wrapped buffer.
func (f *ForwardBuffer[T]) Unwrap() Buffer[T] { return f.Buffer }
