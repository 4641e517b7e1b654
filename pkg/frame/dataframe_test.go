package frame

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/tabula/pkg/column"
	"github.com/ajitpratap0/tabula/pkg/errors"
)

func ptrTo[T any](v T) *T { return &v }

func testFrame(t *testing.T) *DataFrame {
	t.Helper()
	df, err := New(
		column.FromSlice("id", []int64{1, 2, 3}),
		column.FromPtrs("score", []*float64{ptrTo(1.5), nil, ptrTo(3.5)}),
		column.BoolFromSlice("flag", []bool{true, false, true}),
	)
	require.NoError(t, err)
	return df
}

func TestNewEnforcesEqualLengths(t *testing.T) {
	_, err := New(
		column.FromSlice("a", []int64{1, 2}),
		column.FromSlice("b", []int64{1}),
	)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindLengthMismatch))
}

func TestColumnLookup(t *testing.T) {
	df := testFrame(t)
	assert.Equal(t, 3, df.Len())
	assert.Equal(t, 3, df.NumCols())
	assert.Equal(t, []string{"id", "score", "flag"}, df.Names())

	c, err := df.Column("score")
	require.NoError(t, err)
	assert.Equal(t, column.Float64, c.DataType())
	assert.Equal(t, 1, c.NullCount())

	_, err = df.Column("missing")
	assert.Error(t, err)
}

func TestDrop(t *testing.T) {
	df := testFrame(t)
	require.NoError(t, df.Drop("score"))
	assert.Equal(t, []string{"id", "flag"}, df.Names())
	assert.Error(t, df.Drop("score"))
}

func TestHeadRendersNulls(t *testing.T) {
	df := testFrame(t)
	out := df.Head(2)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id\tscore\tflag", lines[0])
	assert.Equal(t, "1\t1.5\ttrue", lines[1])
	assert.Equal(t, "2\tnull\tfalse", lines[2])
}

func TestHeadClampsToLength(t *testing.T) {
	df := testFrame(t)
	out := df.Head(100)
	assert.Equal(t, 4, strings.Count(out, "\n"))
}
