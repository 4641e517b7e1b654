package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/tabula/pkg/errors"
)

func TestEvalArithmetic(t *testing.T) {
	a := FromSlice("a", []int64{1, 2, 3})
	b := FromSlice("b", []int64{10, 20, 30})

	out, err := Eval(OpAdd, a, b)
	require.NoError(t, err)
	assert.Equal(t, int64(33), out.Value(2))

	out, err = Eval(OpMultiply, a, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(12), out.Value(2))
}

func TestEvalScalarOnTheLeft(t *testing.T) {
	c := FromSlice("c", []int64{1, 2, 3})

	out, err := Eval(OpSubtract, 5, c)
	require.NoError(t, err)
	for i, w := range []int64{4, 3, 2} {
		assert.Equal(t, w, out.Value(i))
	}

	out, err = Eval(OpDivide, 12, c)
	require.NoError(t, err)
	for i, w := range []int64{12, 6, 4} {
		assert.Equal(t, w, out.Value(i))
	}
}

func TestEvalComparisonMirrorsScalarSide(t *testing.T) {
	c := FromSlice("c", []int64{1, 5, 9})

	out, err := Eval(OpGreaterThan, c, 4)
	require.NoError(t, err)
	bc := out.(*BoolColumn)
	assert.Equal(t, []bool{false, true, true}, boolValues(t, bc))

	// 4 > c[i], not c[i] > 4.
	out, err = Eval(OpGreaterThan, 4, c)
	require.NoError(t, err)
	bc = out.(*BoolColumn)
	assert.Equal(t, []bool{true, false, false}, boolValues(t, bc))
}

func TestEvalBitwiseScalarIsCommutative(t *testing.T) {
	c := FromSlice("c", []int64{0b1100})

	out, err := Eval(OpAnd, int64(0b1010), c)
	require.NoError(t, err)
	assert.Equal(t, int64(0b1000), out.Value(0))
}

func TestEvalShift(t *testing.T) {
	c := FromSlice("c", []int32{1})

	out, err := Eval(OpLeftShift, c, 3)
	require.NoError(t, err)
	assert.Equal(t, int32(8), out.Value(0))

	_, err = Eval(OpLeftShift, 3, c)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindUnsupported))

	_, err = Eval(OpRightShift, c, "2")
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindUnsupported))
}

func TestEvalRequiresAColumn(t *testing.T) {
	_, err := Eval(OpAdd, 1, 2)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindUnsupported))
}

func TestOpSymbols(t *testing.T) {
	assert.Equal(t, "+", OpAdd.String())
	assert.Equal(t, "!=", OpNotEquals.String())
	assert.Equal(t, "<<", OpLeftShift.String())
}
