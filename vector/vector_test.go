package vector_test

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mangelats/buffers"
	"github.com/mangelats/buffers/alloc"
	"github.com/mangelats/buffers/buffertest"
	"github.com/mangelats/buffers/vector"
)

func TestVectorPushPop(t *testing.T) {
	t.Run("PushThenPopReversesOrder", func(t *testing.T) {
		v := vector.New[string]()
		defer v.Close()

		require.NoError(t, v.Push("a"))
		require.NoError(t, v.Push("b"))
		require.NoError(t, v.Push("c"))
		require.Equal(t, 3, v.Len())

		s, ok := v.Pop()
		require.True(t, ok)
		assert.Equal(t, "c", s)
		s, ok = v.Pop()
		require.True(t, ok)
		assert.Equal(t, "b", s)
		assert.Equal(t, 1, v.Len())
	})

	t.Run("PopOnEmpty", func(t *testing.T) {
		v := vector.New[int]()
		defer v.Close()

		_, ok := v.Pop()
		assert.False(t, ok)
		assert.Equal(t, 0, v.Len())
	})

	t.Run("PushFailureLeavesVectorUnchanged", func(t *testing.T) {
		b := buffers.NewSvo[int](2, buffers.NewHeapWith[int](alloc.NewQuota[int](alloc.Heap[int]{}, 0)))
		v := vector.NewWith[int](b)
		defer v.Close()

		require.NoError(t, v.Push(1))
		require.NoError(t, v.Push(2))

		err := v.Push(3)
		require.ErrorIs(t, err, buffers.ErrCapacity)
		assert.Equal(t, 2, v.Len())
		got, err := v.At(1)
		require.NoError(t, err)
		assert.Equal(t, 2, got)
	})
}

func TestVectorIndexing(t *testing.T) {
	v := vector.New[int]()
	defer v.Close()
	for i := 0; i < 10; i++ {
		require.NoError(t, v.Push(i))
	}

	t.Run("At", func(t *testing.T) {
		got, err := v.At(7)
		require.NoError(t, err)
		assert.Equal(t, 7, got)

		_, err = v.At(10)
		require.ErrorIs(t, err, vector.ErrOutOfRange)
		_, err = v.At(-1)
		require.ErrorIs(t, err, vector.ErrOutOfRange)
	})

	t.Run("RefMutates", func(t *testing.T) {
		p, err := v.Ref(3)
		require.NoError(t, err)
		*p = 333

		got, err := v.At(3)
		require.NoError(t, err)
		assert.Equal(t, 333, got)
	})

	t.Run("SetReplaces", func(t *testing.T) {
		require.NoError(t, v.Set(3, 3))
		require.ErrorIs(t, v.Set(10, 0), vector.ErrOutOfRange)
	})
}

func TestVectorInsertRemove(t *testing.T) {
	t.Run("InsertShiftsTail", func(t *testing.T) {
		v := vector.New[int]()
		defer v.Close()
		for i := 0; i < 5; i++ {
			require.NoError(t, v.Push(i))
		}

		require.NoError(t, v.Insert(2, 99))

		want := []int{0, 1, 99, 2, 3, 4}
		require.Equal(t, len(want), v.Len())
		for i, expected := range want {
			got, err := v.At(i)
			require.NoError(t, err)
			assert.Equal(t, expected, got)
		}
	})

	t.Run("InsertAtLenAppends", func(t *testing.T) {
		v := vector.New[int]()
		defer v.Close()
		require.NoError(t, v.Insert(0, 1))
		require.NoError(t, v.Insert(1, 2))

		got, err := v.At(1)
		require.NoError(t, err)
		assert.Equal(t, 2, got)
	})

	t.Run("RemoveShiftsTail", func(t *testing.T) {
		v := vector.New[int]()
		defer v.Close()
		for i := 0; i < 5; i++ {
			require.NoError(t, v.Push(i))
		}

		got, err := v.Remove(1)
		require.NoError(t, err)
		assert.Equal(t, 1, got)

		want := []int{0, 2, 3, 4}
		require.Equal(t, len(want), v.Len())
		for i, expected := range want {
			value, err := v.At(i)
			require.NoError(t, err)
			assert.Equal(t, expected, value)
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		v := vector.New[int]()
		defer v.Close()

		require.ErrorIs(t, v.Insert(1, 0), vector.ErrOutOfRange)
		_, err := v.Remove(0)
		require.ErrorIs(t, err, vector.ErrOutOfRange)
	})
}

func TestVectorGrowthEndToEnd(t *testing.T) {
	// The spilled heap sits behind a recorder so the reallocation count of
	// the whole composition is observable.
	leaf := buffertest.NewRecorder[int](buffers.NewHeap[int]())
	v := vector.NewWith[int](buffers.NewExponentialGrowth[int](
		buffers.NewSvo[int](8, leaf),
	))
	defer v.Close()

	const n = 1000
	for i := 0; i < n; i++ {
		require.NoError(t, v.Push(i))
	}

	require.Equal(t, n, v.Len())
	for i := 0; i < n; i++ {
		got, err := v.At(i)
		require.NoError(t, err)
		require.Equal(t, i, got)
	}

	capacity := v.Cap()
	assert.GreaterOrEqual(t, capacity, n)
	assert.Equal(t, 1, bits.OnesCount(uint(capacity)), "capacity %d should be a power of two", capacity)
	assert.Equal(t, 1024, capacity)
	assert.LessOrEqual(t, leaf.GrowChanges, bits.Len(n)+1)
}

func TestVectorZeroSizeElements(t *testing.T) {
	v := vector.New[struct{}]()
	defer v.Close()

	for i := 0; i < 100000; i++ {
		require.NoError(t, v.Push(struct{}{}))
	}
	assert.Equal(t, 100000, v.Len())

	_, ok := v.Pop()
	assert.True(t, ok)
	assert.Equal(t, 99999, v.Len())
}

func TestVectorDisposal(t *testing.T) {
	t.Run("CloseDropsEachLiveElementOnceInIndexOrder", func(t *testing.T) {
		log := buffertest.NewLifeLog()
		v := vector.New[buffertest.Life]()
		for i := 0; i < 20; i++ {
			require.NoError(t, v.Push(log.New(i)))
		}

		require.NoError(t, v.Close())

		assert.Equal(t, 0, log.Live())
		want := make([]int, 20)
		for i := range want {
			want[i] = i
		}
		assert.Equal(t, want, log.Drops())
	})

	t.Run("PoppedValuesAreNotDisposedByClose", func(t *testing.T) {
		log := buffertest.NewLifeLog()
		v := vector.New[buffertest.Life]()
		require.NoError(t, v.Push(log.New(0)))
		require.NoError(t, v.Push(log.New(1)))

		_, ok := v.Pop()
		require.True(t, ok)
		require.NoError(t, v.Close())

		assert.Equal(t, 1, log.Live())
		assert.Equal(t, []int{0}, log.Drops())
	})

	t.Run("TruncateDropsTail", func(t *testing.T) {
		log := buffertest.NewLifeLog()
		v := vector.New[buffertest.Life]()
		defer v.Close()
		for i := 0; i < 6; i++ {
			require.NoError(t, v.Push(log.New(i)))
		}

		v.Truncate(2)

		assert.Equal(t, 2, v.Len())
		assert.Equal(t, []int{2, 3, 4, 5}, log.Drops())
	})
}

func TestVectorReserveAndShrink(t *testing.T) {
	v := vector.New[int]()
	defer v.Close()
	require.NoError(t, v.Push(1))

	require.NoError(t, v.Reserve(100))
	capBefore := v.Cap()
	require.GreaterOrEqual(t, capBefore, 101)
	for i := 0; i < 100; i++ {
		require.NoError(t, v.Push(i))
	}
	assert.Equal(t, capBefore, v.Cap(), "reserved pushes must not reallocate")

	_, err := v.ShrinkToFit()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v.Cap(), v.Len())
}

func TestVectorIteration(t *testing.T) {
	v := vector.New[int]()
	defer v.Close()
	for i := 0; i < 5; i++ {
		require.NoError(t, v.Push(i * 2))
	}

	var indices, values []int
	for i, value := range v.All() {
		indices = append(indices, i)
		values = append(values, value)
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4}, indices)
	assert.Equal(t, []int{0, 2, 4, 6, 8}, values)
}
