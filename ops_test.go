package buffers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mangelats/buffers"
	"github.com/mangelats/buffers/buffertest"
)

func TestShiftRight(t *testing.T) {
	t.Run("ContiguousFastPath", func(t *testing.T) {
		b := buffers.NewInline[int](8)
		for i := 0; i < 5; i++ {
			b.WriteValue(i, i+1)
		}

		buffers.ShiftRight[int](b, 2, 5, 2)

		assert.Equal(t, 1, *b.Ref(0))
		assert.Equal(t, 2, *b.Ref(1))
		assert.Equal(t, 3, *b.Ref(4))
		assert.Equal(t, 4, *b.Ref(5))
		assert.Equal(t, 5, *b.Ref(6))
	})

	t.Run("FallbackMatchesFastPath", func(t *testing.T) {
		// A ZstBuffer has no contiguous storage, forcing the per-slot path.
		b := buffers.NewZst[struct{}]()
		buffers.ShiftRight[struct{}](b, 0, 3, 1)
	})
}

func TestShiftLeft(t *testing.T) {
	b := buffers.NewInline[int](8)
	for i := 2; i < 6; i++ {
		b.WriteValue(i, i*10)
	}

	buffers.ShiftLeft[int](b, 2, 6, 2)

	assert.Equal(t, 20, *b.Ref(0))
	assert.Equal(t, 30, *b.Ref(1))
	assert.Equal(t, 40, *b.Ref(2))
	assert.Equal(t, 50, *b.Ref(3))
}

func TestDropRange(t *testing.T) {
	log := buffertest.NewLifeLog()
	b := buffers.NewInline[buffertest.Life](6)
	for i := 0; i < 6; i++ {
		b.WriteValue(i, log.New(i))
	}

	buffers.DropRange[buffertest.Life](b, 1, 4)

	require.Equal(t, 3, log.Live())
	assert.Equal(t, []int{1, 2, 3}, log.Drops())
}

func TestSwap(t *testing.T) {
	b := buffers.NewInline[int](4)
	b.WriteValue(0, 1)
	b.WriteValue(3, 9)

	buffers.Swap[int](b, 0, 3)

	assert.Equal(t, 9, *b.Ref(0))
	assert.Equal(t, 1, *b.Ref(3))
}
