package buffers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mangelats/buffers"
	"github.com/mangelats/buffers/buffertest"
)

func TestExponentialGrowthBuffer(t *testing.T) {
	t.Run("RoundsTargetUpToPowerOfTwo", func(t *testing.T) {
		child := buffertest.NewRecorder[int](buffers.NewHeap[int]())
		b := buffers.NewExponentialGrowth[int](child)

		capacity, err := b.TryGrow(33)
		require.NoError(t, err)
		assert.Equal(t, 64, capacity)
		assert.Equal(t, 64, child.LastGrowTarget)
	})

	t.Run("ExactPowerOfTwoIsNotInflated", func(t *testing.T) {
		child := buffertest.NewRecorder[int](buffers.NewHeap[int]())
		b := buffers.NewExponentialGrowth[int](child)

		capacity, err := b.TryGrow(32)
		require.NoError(t, err)
		assert.Equal(t, 32, capacity)
	})

	t.Run("LogarithmicReallocationCount", func(t *testing.T) {
		child := buffertest.NewRecorder[int](buffers.NewHeap[int]())
		b := buffers.NewExponentialGrowth[int](child)

		// Simulate 1000 one-slot-at-a-time capacity requests, the pattern a
		// vector's push loop produces.
		for n := 1; n <= 1000; n++ {
			_, err := b.TryGrow(n)
			require.NoError(t, err)
		}

		// 1, 2, 4, ..., 1024: eleven capacity changes for a thousand pushes.
		assert.Equal(t, 11, child.GrowChanges)
		assert.Equal(t, 1024, b.Capacity())
	})

	t.Run("ShrinkForwardsUnrounded", func(t *testing.T) {
		child := buffertest.NewRecorder[int](buffers.NewHeap[int]())
		b := buffers.NewExponentialGrowth[int](child)
		_, err := b.TryGrow(64)
		require.NoError(t, err)

		capacity, err := b.TryShrink(5)
		require.NoError(t, err)
		assert.Equal(t, 5, capacity)
		assert.Equal(t, 1, child.Shrinks)
	})
}
