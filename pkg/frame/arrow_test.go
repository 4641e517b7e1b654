package frame

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/tabula/pkg/column"
)

func TestArrowRecordSchemaAndValues(t *testing.T) {
	dec, err := column.DecimalFromStrings("price", []string{"10.50", "0.99", "3.00"})
	require.NoError(t, err)
	df, err := New(
		column.FromSlice("id", []int64{1, 2, 3}),
		column.FromPtrs("score", []*float64{ptrTo(1.5), nil, ptrTo(3.5)}),
		column.BoolFromSlice("flag", []bool{true, false, true}),
		dec,
	)
	require.NoError(t, err)

	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	rec, err := df.ArrowRecord(mem)
	require.NoError(t, err)
	defer rec.Release()

	require.EqualValues(t, 3, rec.NumRows())
	require.EqualValues(t, 4, rec.NumCols())

	schema := rec.Schema()
	assert.Equal(t, "id", schema.Field(0).Name)
	assert.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Int64, schema.Field(0).Type))
	assert.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Float64, schema.Field(1).Type))
	assert.True(t, arrow.TypeEqual(arrow.FixedWidthTypes.Boolean, schema.Field(2).Type))
	assert.True(t, arrow.TypeEqual(arrow.BinaryTypes.String, schema.Field(3).Type))

	ids := rec.Column(0).(*array.Int64)
	assert.Equal(t, int64(2), ids.Value(1))

	scores := rec.Column(1).(*array.Float64)
	assert.Equal(t, 1, scores.NullN())
	assert.True(t, scores.IsNull(1))
	assert.Equal(t, 3.5, scores.Value(2))

	prices := rec.Column(3).(*array.String)
	assert.Equal(t, "10.5", prices.Value(0))
}

func TestArrowRecordNilAllocator(t *testing.T) {
	df, err := New(column.FromSlice("v", []int32{7}))
	require.NoError(t, err)

	rec, err := df.ArrowRecord(nil)
	require.NoError(t, err)
	defer rec.Release()
	assert.EqualValues(t, 1, rec.NumRows())
}
