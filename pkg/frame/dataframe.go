// Package frame provides the table layer over typed columns: construction,
// CSV loading with schema inference, and Arrow/JSON export.
package frame

import (
	"fmt"
	"strings"

	"github.com/ajitpratap0/tabula/pkg/column"
	"github.com/ajitpratap0/tabula/pkg/errors"
)

// DataFrame is an ordered collection of equal-length named columns. The
// frame owns its columns; callers should not mutate a column after handing
// it to a frame while also operating through the frame.
type DataFrame struct {
	columns []column.Column
}

// New builds a DataFrame from columns, enforcing equal lengths.
func New(cols ...column.Column) (*DataFrame, error) {
	df := &DataFrame{}
	for _, c := range cols {
		if err := df.AddColumn(c); err != nil {
			return nil, err
		}
	}
	return df, nil
}

// Len returns the row count.
func (df *DataFrame) Len() int {
	if len(df.columns) == 0 {
		return 0
	}
	return df.columns[0].Len()
}

// NumCols returns the column count.
func (df *DataFrame) NumCols() int {
	return len(df.columns)
}

// Names returns the column names in order.
func (df *DataFrame) Names() []string {
	names := make([]string, len(df.columns))
	for i, c := range df.columns {
		names[i] = c.Name()
	}
	return names
}

// Columns returns the columns in order. The slice is a copy; the columns
// are not.
func (df *DataFrame) Columns() []column.Column {
	out := make([]column.Column, len(df.columns))
	copy(out, df.columns)
	return out
}

// Column returns the first column with the given name.
func (df *DataFrame) Column(name string) (column.Column, error) {
	for _, c := range df.columns {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, errors.Newf(errors.KindConfig, "no column named %q", name)
}

// ColumnAt returns the column at position i.
func (df *DataFrame) ColumnAt(i int) column.Column {
	return df.columns[i]
}

// AddColumn appends a column, enforcing the frame's row count.
func (df *DataFrame) AddColumn(c column.Column) error {
	if len(df.columns) > 0 && c.Len() != df.Len() {
		return errors.Newf(errors.KindLengthMismatch,
			"column %q has length %d, frame has %d", c.Name(), c.Len(), df.Len()).
			WithDetail("column", c.Name())
	}
	df.columns = append(df.columns, c)
	return nil
}

// Drop removes the first column with the given name.
func (df *DataFrame) Drop(name string) error {
	for i, c := range df.columns {
		if c.Name() == name {
			df.columns = append(df.columns[:i], df.columns[i+1:]...)
			return nil
		}
	}
	return errors.Newf(errors.KindConfig, "no column named %q", name)
}

// Head renders the first n rows as a plain text table.
func (df *DataFrame) Head(n int) string {
	if n > df.Len() {
		n = df.Len()
	}
	var sb strings.Builder
	for i, c := range df.columns {
		if i > 0 {
			sb.WriteByte('\t')
		}
		sb.WriteString(c.Name())
	}
	sb.WriteByte('\n')
	for row := 0; row < n; row++ {
		for i, c := range df.columns {
			if i > 0 {
				sb.WriteByte('\t')
			}
			v := c.Value(row)
			if v == nil {
				sb.WriteString("null")
			} else {
				fmt.Fprintf(&sb, "%v", v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
