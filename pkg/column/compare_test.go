package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/tabula/pkg/errors"
)

func boolValues(t *testing.T, c *BoolColumn) []bool {
	t.Helper()
	out := make([]bool, c.Len())
	for i := range out {
		v, ok := c.Get(i)
		require.True(t, ok, "comparison results have no nulls")
		out[i] = v
	}
	return out
}

func TestEqualsNullSemantics(t *testing.T) {
	a := FromPtrs("a", []*int64{ptrTo(int64(1)), nil, nil, ptrTo(int64(4))})
	b := FromPtrs("b", []*int64{ptrTo(int64(1)), nil, ptrTo(int64(3)), ptrTo(int64(5))})

	eq, err := a.ElementwiseEquals(b)
	require.NoError(t, err)
	assert.Equal(t, 0, eq.NullCount())
	// Two nulls are equal; a null never equals a value.
	assert.Equal(t, []bool{true, true, false, false}, boolValues(t, eq))

	ne, err := a.ElementwiseNotEquals(b)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true, true}, boolValues(t, ne))
}

func TestOrderingAgainstNullIsFalse(t *testing.T) {
	a := FromPtrs("a", []*int64{ptrTo(int64(9)), nil, ptrTo(int64(9))})
	b := FromPtrs("b", []*int64{ptrTo(int64(1)), ptrTo(int64(1)), nil})

	gt, err := a.ElementwiseGreaterThan(b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false}, boolValues(t, gt))

	le, err := a.ElementwiseLessThanOrEqual(b)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false}, boolValues(t, le))
}

func TestCompareAcrossKinds(t *testing.T) {
	a := FromSlice("a", []int32{1, 2, 3})
	b := FromSlice("b", []float64{1.0, 2.5, 2.0})

	lt, err := a.ElementwiseLessThan(b)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false}, boolValues(t, lt))

	eq, err := a.ElementwiseEquals(b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false}, boolValues(t, eq))
}

func TestCompareScalar(t *testing.T) {
	c := FromSlice("c", []int64{1, 5, 9})

	gt, err := c.ElementwiseGreaterThan(4)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true}, boolValues(t, gt))

	eq, err := c.ElementwiseEquals(5)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false}, boolValues(t, eq))
}

func TestCompareScalarAgainstNulls(t *testing.T) {
	c := FromPtrs("c", []*int64{ptrTo(int64(5)), nil})

	eq, err := c.ElementwiseEquals(5)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, boolValues(t, eq))

	ne, err := c.ElementwiseNotEquals(5)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true}, boolValues(t, ne))

	gt, err := c.ElementwiseGreaterThan(0)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, boolValues(t, gt))
}

func TestBoolEquality(t *testing.T) {
	a := BoolFromSlice("a", []bool{true, false, true})
	b := BoolFromSlice("b", []bool{true, true, false})

	eq, err := a.ElementwiseEquals(b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false}, boolValues(t, eq))

	_, err = ElementwiseGreaterThan(a, b)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindUnsupported))
}

func TestDecimalCompare(t *testing.T) {
	a, err := DecimalFromStrings("a", []string{"1.50", "2.00"})
	require.NoError(t, err)
	b := FromSlice("b", []float64{1.5, 3})

	eq, err := a.ElementwiseEquals(b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, boolValues(t, eq))

	lt, err := a.ElementwiseLessThan(b)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true}, boolValues(t, lt))
}

func TestCompareLengthMismatch(t *testing.T) {
	a := FromSlice("a", []int64{1})
	b := FromSlice("b", []int64{1, 2})

	_, err := a.ElementwiseEquals(b)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindLengthMismatch))
}
