package bitmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetCount(t *testing.T) {
	bm := New(130)
	assert.Equal(t, 130, bm.Len())
	assert.Equal(t, 0, bm.Count())

	bm.Set(0, true)
	bm.Set(64, true)
	bm.Set(129, true)
	assert.Equal(t, 3, bm.Count())
	assert.True(t, bm.Get(0))
	assert.True(t, bm.Get(64))
	assert.True(t, bm.Get(129))
	assert.False(t, bm.Get(1))

	bm.Set(64, false)
	assert.Equal(t, 2, bm.Count())
}

func TestNewAllSetKeepsTailClear(t *testing.T) {
	bm := NewAllSet(70)
	assert.Equal(t, 70, bm.Count())
	for i := 0; i < 70; i++ {
		require.True(t, bm.Get(i), "bit %d", i)
	}
}

func TestAppendAcrossWordBoundary(t *testing.T) {
	bm := New(0)
	for i := 0; i < 100; i++ {
		bm.Append(i%3 == 0)
	}
	assert.Equal(t, 100, bm.Len())
	assert.Equal(t, 34, bm.Count())
	assert.True(t, bm.Get(99))
	assert.False(t, bm.Get(98))
}

func TestCloneIsIndependent(t *testing.T) {
	bm := NewAllSet(10)
	cp := bm.Clone()
	cp.Set(3, false)
	assert.True(t, bm.Get(3))
	assert.False(t, cp.Get(3))
}

func TestAndNilMeansAllSet(t *testing.T) {
	assert.Nil(t, And(nil, nil))

	bm := New(3)
	bm.Set(1, true)

	out := And(bm, nil)
	require.NotNil(t, out)
	assert.Equal(t, 1, out.Count())
	// The result is a copy, not the operand.
	out.Set(0, true)
	assert.Equal(t, 1, bm.Count())

	other := NewAllSet(3)
	other.Set(1, false)
	assert.Equal(t, 0, And(bm, other).Count())
}
