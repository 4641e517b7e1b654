package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/tabula/pkg/errors"
)

func TestBoolLogicalNullPropagation(t *testing.T) {
	a := BoolFromPtrs("a", []*bool{ptrTo(true), nil, ptrTo(false)})
	b := BoolFromPtrs("b", []*bool{ptrTo(true), ptrTo(true), nil})

	out, err := a.And(b, false)
	require.NoError(t, err)
	assert.Equal(t, true, out.Value(0))
	assert.Nil(t, out.Value(1))
	assert.Nil(t, out.Value(2))
}

func TestBoolLogicalTruthTable(t *testing.T) {
	a := BoolFromSlice("a", []bool{true, true, false, false})
	b := BoolFromSlice("b", []bool{true, false, true, false})

	and, err := a.And(b, false)
	require.NoError(t, err)
	or, err := a.Or(b, false)
	require.NoError(t, err)
	xor, err := a.Xor(b, false)
	require.NoError(t, err)

	for i, w := range []bool{true, false, false, false} {
		assert.Equal(t, w, and.Value(i), "and index %d", i)
	}
	for i, w := range []bool{true, true, true, false} {
		assert.Equal(t, w, or.Value(i), "or index %d", i)
	}
	for i, w := range []bool{false, true, true, false} {
		assert.Equal(t, w, xor.Value(i), "xor index %d", i)
	}
}

func TestBoolLogicalScalar(t *testing.T) {
	a := BoolFromSlice("a", []bool{true, false})

	or, err := a.Or(true, false)
	require.NoError(t, err)
	assert.Equal(t, true, or.Value(0))
	assert.Equal(t, true, or.Value(1))

	xor, err := a.Xor(true, false)
	require.NoError(t, err)
	assert.Equal(t, false, xor.Value(0))
	assert.Equal(t, true, xor.Value(1))
}

func TestIntegerBitwisePromotes(t *testing.T) {
	a := FromSlice("a", []uint8{0xF0})
	b := FromSlice("b", []uint8{0x3C})

	out, err := a.And(b, false)
	require.NoError(t, err)
	require.Equal(t, Int32, out.DataType())
	assert.Equal(t, int32(0x30), out.Value(0))
}

func TestIntegerBitwiseScalar(t *testing.T) {
	a := FromSlice("a", []int64{0b1010, 0b0110})

	out, err := a.Xor(int64(0b0011), false)
	require.NoError(t, err)
	require.Equal(t, Int64, out.DataType())
	assert.Equal(t, int64(0b1001), out.Value(0))
	assert.Equal(t, int64(0b0101), out.Value(1))
}

func TestBitwiseRejectsSignedWithUint64(t *testing.T) {
	a := FromSlice("a", []int64{1})
	b := FromSlice("b", []uint64{1})

	_, err := a.And(b, false)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindUnsupported))
}

func TestBitwiseRejectsFloats(t *testing.T) {
	a := FromSlice("a", []float64{1})

	_, err := a.And(int64(1), false)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindUnsupported))
}

func TestBitwiseRejectsBoolWithInteger(t *testing.T) {
	a := BoolFromSlice("a", []bool{true})

	_, err := a.And(int64(1), false)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindUnsupported))
}
