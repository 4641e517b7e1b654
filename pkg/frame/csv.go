package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ajitpratap0/tabula/pkg/column"
	"github.com/ajitpratap0/tabula/pkg/errors"
	"github.com/ajitpratap0/tabula/pkg/logger"
)

// CSVOptions controls CSV loading. The zero value is not useful; use
// ReadCSV with functional options instead.
type CSVOptions struct {
	Comma      rune
	Header     bool
	NullValues []string
	InferRows  int
	// Types pins a kind per column name (or positional name when the
	// input has no header), bypassing inference for that column.
	Types map[string]column.DataType
}

// CSVOption customizes CSV loading.
type CSVOption func(*CSVOptions)

// WithDelimiter sets the field delimiter.
func WithDelimiter(r rune) CSVOption {
	return func(o *CSVOptions) { o.Comma = r }
}

// WithoutHeader treats the first record as data and names columns
// Column0, Column1, ...
func WithoutHeader() CSVOption {
	return func(o *CSVOptions) { o.Header = false }
}

// WithNullValues replaces the set of tokens parsed as null.
func WithNullValues(tokens ...string) CSVOption {
	return func(o *CSVOptions) { o.NullValues = tokens }
}

// WithInferRows sets how many leading records inference samples.
func WithInferRows(n int) CSVOption {
	return func(o *CSVOptions) { o.InferRows = n }
}

// WithColumnTypes pins kinds for the named columns.
func WithColumnTypes(types map[string]column.DataType) CSVOption {
	return func(o *CSVOptions) { o.Types = types }
}

// ReadCSV loads a CSV stream into a DataFrame. Kinds are inferred per
// column from a sample window unless pinned via WithColumnTypes; fields
// matching a null token load as nulls.
func ReadCSV(r io.Reader, opts ...CSVOption) (*DataFrame, error) {
	o := CSVOptions{
		Comma:      ',',
		Header:     true,
		NullValues: []string{"", "null", "NULL"},
		InferRows:  1000,
	}
	for _, opt := range opts {
		opt(&o)
	}
	nullSet := make(map[string]struct{}, len(o.NullValues))
	for _, t := range o.NullValues {
		nullSet[t] = struct{}{}
	}
	isNull := func(s string) bool {
		_, ok := nullSet[s]
		return ok
	}

	cr := csv.NewReader(r)
	cr.Comma = o.Comma
	cr.ReuseRecord = false

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, errors.KindParse, "reading csv")
	}
	if len(records) == 0 {
		return New()
	}

	var names []string
	rows := records
	if o.Header {
		names = records[0]
		rows = records[1:]
	} else {
		names = make([]string, len(records[0]))
		for i := range names {
			names[i] = fmt.Sprintf("Column%d", i)
		}
	}
	for _, rec := range rows {
		if len(rec) != len(names) {
			return nil, errors.Newf(errors.KindParse, "record has %d fields, expected %d", len(rec), len(names))
		}
	}

	sample := len(rows)
	if sample > o.InferRows {
		sample = o.InferRows
	}

	cols := make([]column.Column, len(names))
	for ci, name := range names {
		kind, pinned := o.Types[name]
		if !pinned {
			fields := make([]string, 0, sample)
			for ri := 0; ri < sample; ri++ {
				fields = append(fields, rows[ri][ci])
			}
			kind = inferKind(fields, isNull)
		}
		logger.Debug("csv column resolved",
			zap.String("column", name),
			zap.Stringer("kind", kind),
			zap.Bool("pinned", pinned))
		c, err := column.New(name, kind, len(rows))
		if err != nil {
			return nil, err
		}
		cols[ci] = c
	}

	for ri, rec := range rows {
		for ci, field := range rec {
			if isNull(field) {
				cols[ci].AppendNull()
				continue
			}
			if err := appendField(cols[ci], field); err != nil {
				return nil, errors.Wrapf(err, errors.KindParse,
					"row %d column %q", ri, names[ci])
			}
		}
	}
	return New(cols...)
}

// appendField parses a raw CSV field into the column's kind.
func appendField(c column.Column, field string) error {
	switch c.DataType() {
	case column.Bool:
		v, err := strconv.ParseBool(field)
		if err != nil {
			return err
		}
		return c.AppendValue(v)
	case column.Int8, column.Int16, column.Int32, column.Int64:
		v, err := strconv.ParseInt(field, 10, bitSize(c.DataType()))
		if err != nil {
			return err
		}
		return c.AppendValue(v)
	case column.Uint8, column.Uint16, column.Uint32, column.Uint64:
		v, err := strconv.ParseUint(field, 10, bitSize(c.DataType()))
		if err != nil {
			return err
		}
		return c.AppendValue(v)
	case column.Float32, column.Float64:
		v, err := strconv.ParseFloat(field, bitSize(c.DataType()))
		if err != nil {
			return err
		}
		return c.AppendValue(v)
	case column.Decimal:
		v, err := decimal.NewFromString(field)
		if err != nil {
			return err
		}
		return c.AppendValue(v)
	default:
		return c.AppendValue(field)
	}
}

func bitSize(t column.DataType) int {
	switch t {
	case column.Int8, column.Uint8:
		return 8
	case column.Int16, column.Uint16:
		return 16
	case column.Int32, column.Uint32, column.Float32:
		return 32
	default:
		return 64
	}
}
