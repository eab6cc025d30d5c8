package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparseSet_Basic(t *testing.T) {
	s := NewSparseSet(100)

	assert.True(t, s.IsEmpty())
	assert.False(t, s.Contains(0))

	assert.True(t, s.Insert(5), "first insert should report novelty")
	assert.True(t, s.Contains(5))
	assert.False(t, s.Insert(5), "duplicate insert should report false")
	assert.Equal(t, 1, s.Len())

	s.Insert(10)
	s.Insert(3)
	s.Insert(7)
	assert.Equal(t, 4, s.Len())

	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.False(t, s.Contains(5))
}

func TestSparseSet_InsertionOrder(t *testing.T) {
	s := NewSparseSet(100)
	for _, v := range []uint32{5, 2, 8, 1} {
		s.Insert(v)
	}
	assert.Equal(t, []uint32{5, 2, 8, 1}, s.Values())
}

func TestSparseSet_StaleSlotsAfterClear(t *testing.T) {
	s := NewSparseSet(100)
	s.Insert(5)
	s.Insert(10)
	s.Clear()

	// sparse[5] and sparse[10] still hold old slots
	assert.False(t, s.Contains(5))
	assert.False(t, s.Contains(10))

	s.Insert(3)
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(5))
	assert.False(t, s.Contains(10))
}

func TestSparseSet_OutOfRange(t *testing.T) {
	s := NewSparseSet(4)
	assert.Equal(t, 4, s.Capacity())
	assert.False(t, s.Contains(4))
	assert.False(t, s.Contains(1<<20))
	assert.Panics(t, func() { s.Insert(4) })
}

func TestSparseSet_ClearPreservesCapacity(t *testing.T) {
	s := NewSparseSet(64)
	for i := uint32(0); i < 50; i++ {
		s.Insert(i)
	}
	s.Clear()
	for i := uint32(0); i < 50; i++ {
		require.True(t, s.Insert(i))
	}
	assert.Equal(t, 50, s.Len())
}

func TestSparseSets_Swap(t *testing.T) {
	ss := NewSparseSets(100)
	ss.Set1.Insert(1)
	ss.Set1.Insert(2)
	ss.Set2.Insert(10)

	ss.Swap()

	assert.True(t, ss.Set1.Contains(10))
	assert.True(t, ss.Set2.Contains(1))
	assert.True(t, ss.Set2.Contains(2))

	ss.Clear()
	assert.True(t, ss.Set1.IsEmpty())
	assert.True(t, ss.Set2.IsEmpty())
}

func BenchmarkSparseSet_Insert(b *testing.B) {
	s := NewSparseSet(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Clear()
		for j := uint32(0); j < 100; j++ {
			s.Insert(j)
		}
	}
}
