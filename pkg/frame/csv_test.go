package frame

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/tabula/pkg/column"
	"github.com/ajitpratap0/tabula/pkg/errors"
	"github.com/ajitpratap0/tabula/pkg/logger"
	"github.com/ajitpratap0/tabula/pkg/testutil"
)

func TestReadCSVInfersKinds(t *testing.T) {
	logger.Set(testutil.TestLogger(t))
	in := strings.Join([]string{
		"id,name,score,flag",
		"1,alice,3.5,true",
		"2,,,false",
		"3,carol,7,true",
	}, "\n")

	df, err := ReadCSV(strings.NewReader(in))
	testutil.RequireNoError(t, err, "reading csv")
	require.Equal(t, 3, df.Len())
	require.Equal(t, []string{"id", "name", "score", "flag"}, df.Names())

	assert.Equal(t, column.Int64, df.ColumnAt(0).DataType())
	assert.Equal(t, column.String, df.ColumnAt(1).DataType())
	assert.Equal(t, column.Float64, df.ColumnAt(2).DataType())
	assert.Equal(t, column.Bool, df.ColumnAt(3).DataType())

	// Empty fields load as nulls.
	name := df.ColumnAt(1)
	assert.Equal(t, 1, name.NullCount())
	assert.Nil(t, name.Value(1))

	score := df.ColumnAt(2)
	assert.Equal(t, 3.5, score.Value(0))
	assert.Nil(t, score.Value(1))
	assert.Equal(t, 7.0, score.Value(2))
}

func TestReadCSVCustomDelimiterAndNoHeader(t *testing.T) {
	in := "1;x\n2;y\n"

	df, err := ReadCSV(strings.NewReader(in), WithDelimiter(';'), WithoutHeader())
	require.NoError(t, err)
	assert.Equal(t, []string{"Column0", "Column1"}, df.Names())
	assert.Equal(t, column.Int64, df.ColumnAt(0).DataType())
	assert.Equal(t, "y", df.ColumnAt(1).Value(1))
}

func TestReadCSVPinnedTypes(t *testing.T) {
	in := "id,price\n1,10.50\n2,0.99\n"

	df, err := ReadCSV(strings.NewReader(in), WithColumnTypes(map[string]column.DataType{
		"id":    column.Uint8,
		"price": column.Decimal,
	}))
	require.NoError(t, err)
	assert.Equal(t, column.Uint8, df.ColumnAt(0).DataType())
	assert.Equal(t, column.Decimal, df.ColumnAt(1).DataType())
	assert.Equal(t, uint8(2), df.ColumnAt(0).Value(1))
}

func TestReadCSVCustomNullTokens(t *testing.T) {
	in := "v\nNA\n4\n"

	df, err := ReadCSV(strings.NewReader(in), WithNullValues("NA"))
	require.NoError(t, err)
	c := df.ColumnAt(0)
	assert.Equal(t, column.Int64, c.DataType())
	assert.Nil(t, c.Value(0))
	assert.Equal(t, int64(4), c.Value(1))
}

func TestReadCSVInferenceWindow(t *testing.T) {
	// Inference only samples the first record; the non-numeric value later
	// in the column surfaces as a parse error.
	in := "v\n1\nnot-a-number\n"

	_, err := ReadCSV(strings.NewReader(in), WithInferRows(1))
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindParse))
}

func TestReadCSVRaggedRecord(t *testing.T) {
	in := "a,b\n1\n"

	_, err := ReadCSV(strings.NewReader(in))
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindParse))
}

func TestReadCSVEmptyInput(t *testing.T) {
	df, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, df.NumCols())
	assert.Equal(t, 0, df.Len())
}

func TestInferKindFallbacks(t *testing.T) {
	never := func(string) bool { return false }
	assert.Equal(t, column.Bool, inferKind([]string{"true", "false"}, never))
	assert.Equal(t, column.Int64, inferKind([]string{"1", "-2"}, never))
	assert.Equal(t, column.Float64, inferKind([]string{"1", "2.5"}, never))
	assert.Equal(t, column.String, inferKind([]string{"1", "x"}, never))
	assert.Equal(t, column.String, inferKind(nil, never))

	isNA := func(s string) bool { return s == "NA" }
	assert.Equal(t, column.Int64, inferKind([]string{"NA", "3"}, isNA))
	assert.Equal(t, column.String, inferKind([]string{"NA", "NA"}, isNA))
}
