package vector

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVectorCapacity(t *testing.T) {
	for _, c := range []int{0, 1, 7, 64} {
		v, err := NewVector(c)
		require.NoError(t, err)
		assert.Equal(t, c, v.Cap())
		assert.Equal(t, 0, v.Size())
	}
}

func TestNewVectorAllocationErrors(t *testing.T) {
	for _, c := range []int{-1, MaxCapacity + 1} {
		v, err := NewVector(c)
		assert.ErrorIs(t, err, ErrAllocation, "capacity %d", c)
		assert.Nil(t, v)
	}
}

func TestNewVectorRuntimeLimit(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("runtime address limit is only below MaxCapacity on 64-bit")
	}
	_, err := NewVector(MaxCapacity)
	require.ErrorIs(t, err, ErrAllocation)
	t.Logf("allocation error: %v", err)
}

func TestNextCapacity(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 1},
		{1, 2},
		{3, 6},
		{1024, 2048},
		{MaxCapacity / 2, MaxCapacity / 2 * 2},
	}
	for _, tt := range tests {
		got, err := nextCapacity(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "from %d", tt.in)
	}

	_, err := nextCapacity(MaxCapacity/2 + 1)
	assert.ErrorIs(t, err, ErrAllocation)
}

func TestReserve(t *testing.T) {
	v := mustVector(t, 2, "a", "b")

	require.NoError(t, v.Reserve(1))
	assert.Equal(t, 2, v.Cap())

	require.NoError(t, v.Reserve(5))
	assert.Equal(t, 8, v.Cap())
	assert.Equal(t, []string{"a", "b"}, v.Slice())
	checkInvariant(t, v)

	assert.ErrorIs(t, v.Reserve(MaxCapacity+1), ErrAllocation)
	assert.Equal(t, 8, v.Cap())
}

func TestReserveFromZero(t *testing.T) {
	var v Vector
	require.NoError(t, v.Reserve(3))
	assert.Equal(t, 4, v.Cap())
}

func TestGrowKeepsCount(t *testing.T) {
	v := mustVector(t, 3, "a", "b", "c")
	require.NoError(t, v.grow())
	assert.Equal(t, 6, v.Cap())
	assert.Equal(t, 3, v.Size())
	assert.Equal(t, []string{"a", "b", "c"}, v.Slice())
	checkInvariant(t, v)
}

func TestAmortizedGrowth(t *testing.T) {
	v := mustVector(t, 1)
	grows := 0
	last := v.Cap()
	for i := 0; i < 1<<12; i++ {
		require.NoError(t, v.Append("x"))
		if v.Cap() != last {
			grows++
			last = v.Cap()
		}
	}
	// 1 -> 4096 takes twelve doublings.
	assert.Equal(t, 12, grows)
}

func TestFree(t *testing.T) {
	v := mustVector(t, 2, "a", "b")
	elems := v.elements

	v.Free()
	assert.Equal(t, 0, v.Size())
	assert.Equal(t, 0, v.Cap())
	assert.Equal(t, []string{"", ""}, elems)
}
