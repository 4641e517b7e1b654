package frame

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/tabula/pkg/column"
)

func TestWriteJSONRowObjects(t *testing.T) {
	df := testFrame(t)

	var buf bytes.Buffer
	require.NoError(t, df.WriteJSON(&buf))

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 3)

	assert.Equal(t, float64(1), rows[0]["id"])
	assert.Equal(t, 1.5, rows[0]["score"])
	assert.Equal(t, true, rows[0]["flag"])

	// Null slot round-trips as JSON null.
	v, present := rows[1]["score"]
	assert.True(t, present)
	assert.Nil(t, v)
}

func TestWriteJSONDecimalsAreExact(t *testing.T) {
	dec, err := column.DecimalFromStrings("price", []string{"10.50"})
	require.NoError(t, err)
	df, err := New(dec)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, df.WriteJSON(&buf))
	assert.Contains(t, buf.String(), `"price":"10.5"`)
}

func TestMarshalJSONMatchesWriter(t *testing.T) {
	df := testFrame(t)

	var buf bytes.Buffer
	require.NoError(t, df.WriteJSON(&buf))
	raw, err := json.Marshal(df)
	require.NoError(t, err)
	assert.JSONEq(t, buf.String(), string(raw))
}
