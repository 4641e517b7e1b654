package frame

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/ajitpratap0/tabula/pkg/column"
	"github.com/ajitpratap0/tabula/pkg/errors"
)

// ArrowRecord exports the frame as an Arrow record batch. Numeric and bool
// columns map to their Arrow primitive types with validity carried over;
// decimal and string columns map to Arrow strings (decimals render with
// full precision). The caller owns the returned record and must Release it.
func (df *DataFrame) ArrowRecord(mem memory.Allocator) (arrow.Record, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	fields := make([]arrow.Field, 0, df.NumCols())
	arrs := make([]arrow.Array, 0, df.NumCols())
	release := func() {
		for _, a := range arrs {
			a.Release()
		}
	}

	for _, c := range df.columns {
		dt, err := arrowType(c.DataType())
		if err != nil {
			release()
			return nil, err
		}
		arr := buildArrowArray(mem, c)
		fields = append(fields, arrow.Field{Name: c.Name(), Type: dt, Nullable: true})
		arrs = append(arrs, arr)
	}

	schema := arrow.NewSchema(fields, nil)
	rec := array.NewRecord(schema, arrs, int64(df.Len()))
	release()
	return rec, nil
}

func arrowType(t column.DataType) (arrow.DataType, error) {
	switch t {
	case column.Bool:
		return arrow.FixedWidthTypes.Boolean, nil
	case column.Int8:
		return arrow.PrimitiveTypes.Int8, nil
	case column.Int16:
		return arrow.PrimitiveTypes.Int16, nil
	case column.Int32:
		return arrow.PrimitiveTypes.Int32, nil
	case column.Int64:
		return arrow.PrimitiveTypes.Int64, nil
	case column.Uint8:
		return arrow.PrimitiveTypes.Uint8, nil
	case column.Uint16:
		return arrow.PrimitiveTypes.Uint16, nil
	case column.Uint32:
		return arrow.PrimitiveTypes.Uint32, nil
	case column.Uint64:
		return arrow.PrimitiveTypes.Uint64, nil
	case column.Float32:
		return arrow.PrimitiveTypes.Float32, nil
	case column.Float64:
		return arrow.PrimitiveTypes.Float64, nil
	case column.Decimal, column.String:
		return arrow.BinaryTypes.String, nil
	default:
		return nil, errors.Newf(errors.KindUnsupported, "no arrow mapping for %s", t)
	}
}

func buildArrowArray(mem memory.Allocator, c column.Column) arrow.Array {
	switch tc := c.(type) {
	case *column.BoolColumn:
		b := array.NewBooleanBuilder(mem)
		defer b.Release()
		for i := 0; i < tc.Len(); i++ {
			if v, ok := tc.Get(i); ok {
				b.Append(v)
			} else {
				b.AppendNull()
			}
		}
		return b.NewArray()
	case *column.NumericColumn[int8]:
		return buildNumeric(array.NewInt8Builder(mem), tc)
	case *column.NumericColumn[int16]:
		return buildNumeric(array.NewInt16Builder(mem), tc)
	case *column.NumericColumn[int32]:
		return buildNumeric(array.NewInt32Builder(mem), tc)
	case *column.NumericColumn[int64]:
		return buildNumeric(array.NewInt64Builder(mem), tc)
	case *column.NumericColumn[uint8]:
		return buildNumeric(array.NewUint8Builder(mem), tc)
	case *column.NumericColumn[uint16]:
		return buildNumeric(array.NewUint16Builder(mem), tc)
	case *column.NumericColumn[uint32]:
		return buildNumeric(array.NewUint32Builder(mem), tc)
	case *column.NumericColumn[uint64]:
		return buildNumeric(array.NewUint64Builder(mem), tc)
	case *column.NumericColumn[float32]:
		return buildNumeric(array.NewFloat32Builder(mem), tc)
	case *column.NumericColumn[float64]:
		return buildNumeric(array.NewFloat64Builder(mem), tc)
	case *column.DecimalColumn:
		b := array.NewStringBuilder(mem)
		defer b.Release()
		for i := 0; i < tc.Len(); i++ {
			if v, ok := tc.Get(i); ok {
				b.Append(v.String())
			} else {
				b.AppendNull()
			}
		}
		return b.NewArray()
	default:
		sc := c.(*column.StringColumn)
		b := array.NewStringBuilder(mem)
		defer b.Release()
		for i := 0; i < sc.Len(); i++ {
			if v, ok := sc.Get(i); ok {
				b.Append(v)
			} else {
				b.AppendNull()
			}
		}
		return b.NewArray()
	}
}

type arrowBuilder[T column.Number] interface {
	Append(T)
	AppendNull()
	NewArray() arrow.Array
	Release()
}

func buildNumeric[T column.Number](b arrowBuilder[T], c *column.NumericColumn[T]) arrow.Array {
	defer b.Release()
	for i := 0; i < c.Len(); i++ {
		if v, ok := c.Get(i); ok {
			b.Append(v)
		} else {
			b.AppendNull()
		}
	}
	return b.NewArray()
}
