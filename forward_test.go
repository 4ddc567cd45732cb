package buffers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mangelats/buffers"
)

func TestForwardBuffer(t *testing.T) {
	t.Run("DelegatesEveryOperation", func(t *testing.T) {
		inner := buffers.NewInline[string](4)
		b := buffers.NewForward[string](inner)

		assert.Equal(t, 4, b.Capacity())
		b.WriteValue(1, "x")
		assert.Equal(t, "x", *inner.Ref(1))
		assert.Equal(t, "x", b.ReadValue(1))

		_, err := b.TryGrow(10)
		require.ErrorIs(t, err, buffers.ErrCapacity)
	})

	t.Run("Unwrap", func(t *testing.T) {
		inner := buffers.NewHeap[int]()
		b := buffers.NewForward[int](inner)
		assert.Same(t, inner, b.Unwrap().(*buffers.HeapBuffer[int]))
	})
}
