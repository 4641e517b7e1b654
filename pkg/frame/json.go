package frame

import (
	"io"

	json "github.com/goccy/go-json"

	"github.com/ajitpratap0/tabula/pkg/errors"
)

// WriteJSON streams the frame as a JSON array of row objects. Null slots
// render as JSON null; decimals render as exact number strings via their
// own marshaler.
func (df *DataFrame) WriteJSON(w io.Writer) error {
	rows := make([]map[string]interface{}, df.Len())
	names := df.Names()
	for ri := range rows {
		row := make(map[string]interface{}, df.NumCols())
		for ci, c := range df.columns {
			row[names[ci]] = c.Value(ri)
		}
		rows[ri] = row
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(rows); err != nil {
		return errors.Wrap(err, errors.KindConversion, "encoding frame to json")
	}
	return nil
}

// MarshalJSON implements json.Marshaler with the same row-object layout as
// WriteJSON.
func (df *DataFrame) MarshalJSON() ([]byte, error) {
	rows := make([]map[string]interface{}, df.Len())
	names := df.Names()
	for ri := range rows {
		row := make(map[string]interface{}, df.NumCols())
		for ci, c := range df.columns {
			row[names[ci]] = c.Value(ri)
		}
		rows[ri] = row
	}
	return json.Marshal(rows)
}
