package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/tabula/pkg/errors"
)

func TestLeftShiftPromotesNarrowKinds(t *testing.T) {
	c := FromSlice("c", []uint8{1, 2})

	out, err := c.LeftShift(2, false)
	require.NoError(t, err)
	require.Equal(t, Int32, out.DataType())
	assert.Equal(t, int32(4), out.Value(0))
	assert.Equal(t, int32(8), out.Value(1))
}

func TestRightShiftIsArithmeticForSigned(t *testing.T) {
	c := FromSlice("c", []int32{-8, 8})

	out, err := c.RightShift(1, false)
	require.NoError(t, err)
	require.Equal(t, Int32, out.DataType())
	assert.Equal(t, int32(-4), out.Value(0))
	assert.Equal(t, int32(4), out.Value(1))
}

func TestRightShiftIsLogicalForUnsigned(t *testing.T) {
	c := FromSlice("c", []uint32{0x80000000})

	out, err := c.RightShift(1, false)
	require.NoError(t, err)
	require.Equal(t, Uint32, out.DataType())
	assert.Equal(t, uint32(0x40000000), out.Value(0))
}

func TestShiftCountIsMasked(t *testing.T) {
	c32 := FromSlice("c", []int32{1})
	out, err := c32.LeftShift(33, false)
	require.NoError(t, err)
	assert.Equal(t, int32(2), out.Value(0), "32-bit shift count masks to 1")

	c64 := FromSlice("c", []int64{1})
	out, err = c64.LeftShift(64, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Value(0), "64-bit shift count masks to 0")
}

func TestShiftPreservesNulls(t *testing.T) {
	c := FromPtrs("c", []*int64{ptrTo(int64(4)), nil})

	out, err := c.LeftShift(1, false)
	require.NoError(t, err)
	assert.Equal(t, int64(8), out.Value(0))
	assert.Nil(t, out.Value(1))
}

func TestShiftInPlaceRequiresStableKind(t *testing.T) {
	narrow := FromSlice("c", []uint8{1})
	_, err := narrow.LeftShift(1, true)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindUnsupported))

	wide := FromSlice("c", []int64{1})
	out, err := wide.LeftShift(1, true)
	require.NoError(t, err)
	require.True(t, out.(*NumericColumn[int64]) == wide)
	assert.Equal(t, int64(2), wide.Value(0))
}

func TestShiftRejectsFloats(t *testing.T) {
	c := FromSlice("c", []float32{1})

	_, err := c.LeftShift(1, false)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindUnsupported))
}
