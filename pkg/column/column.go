// Package column implements typed, null-aware columns and the promotion
// engine that lets columns of differing numeric kinds participate in
// elementwise arithmetic, comparison, bitwise and shift operations.
//
// Values live in packed buffers; nullness lives in a separate validity
// bitmap (a nil bitmap means no nulls). A null slot's stored bit pattern is
// unspecified and ignored by every operation.
//
// Columns are not safe for concurrent mutation. An in-place operation
// mutating a column while another goroutine reads it is a data race; the
// caller owns that coordination. Copy-mode operations never mutate shared
// state, so concurrent copy-mode use of the same column is safe.
package column

import (
	"github.com/shopspring/decimal"

	"github.com/ajitpratap0/tabula/pkg/errors"
)

// Column is the common surface of all column kinds. Concrete columns add
// the arithmetic/comparison surface appropriate to their kind; a kind that
// lacks an operation simply does not have the method.
type Column interface {
	Name() string
	SetName(name string)
	DataType() DataType
	Len() int
	NullCount() int
	IsNull(i int) bool
	// Value returns the boxed element at i, or nil when the slot is null.
	Value(i int) interface{}
	// AppendValue appends a value converted to the column's kind; nil
	// appends a null.
	AppendValue(v interface{}) error
	AppendNull()
	// Clone returns a structurally independent copy.
	Clone() Column
	// CloneAsType converts every valid element to the target kind with
	// unchecked cast semantics: narrowing truncates silently.
	CloneAsType(t DataType) (Column, error)
	// CloneAsTypeChecked is CloneAsType with overflow detection: a value
	// that does not fit the target kind fails with KindOverflow.
	CloneAsTypeChecked(t DataType) (Column, error)
}

// New allocates an empty column of the given kind. This is the construction
// boundary used by loaders that stream parsed fields into typed columns
// without knowing promotion rules.
func New(name string, t DataType, capacity int) (Column, error) {
	switch t {
	case Bool:
		return NewBool(name), nil
	case Int8:
		return NewNumeric[int8](name, capacity), nil
	case Int16:
		return NewNumeric[int16](name, capacity), nil
	case Int32:
		return NewNumeric[int32](name, capacity), nil
	case Int64:
		return NewNumeric[int64](name, capacity), nil
	case Uint8:
		return NewNumeric[uint8](name, capacity), nil
	case Uint16:
		return NewNumeric[uint16](name, capacity), nil
	case Uint32:
		return NewNumeric[uint32](name, capacity), nil
	case Uint64:
		return NewNumeric[uint64](name, capacity), nil
	case Float32:
		return NewNumeric[float32](name, capacity), nil
	case Float64:
		return NewNumeric[float64](name, capacity), nil
	case Decimal:
		return NewDecimal(name, capacity), nil
	case String:
		return NewString(name, capacity), nil
	default:
		return nil, errors.Newf(errors.KindUnsupported, "unknown column kind %d", t)
	}
}

// scalar classes for operand normalization.
type scalarClass uint8

const (
	scalarSigned scalarClass = iota
	scalarUnsigned
	scalarFloat
	scalarDecimal
	scalarBool
)

// scalarValue is a scalar operand normalized out of its Go type. A scalar
// is always valid; it is conceptually broadcast to every row.
type scalarValue struct {
	class scalarClass
	i     int64
	u     uint64
	f     float64
	d     decimal.Decimal
	b     bool
	dtype DataType
}

// normalizeScalar classifies a Go scalar operand. Untyped int literals
// arrive as int and map to Int64; uint maps to Uint64.
func normalizeScalar(v interface{}) (scalarValue, error) {
	switch s := v.(type) {
	case int8:
		return scalarValue{class: scalarSigned, i: int64(s), dtype: Int8}, nil
	case int16:
		return scalarValue{class: scalarSigned, i: int64(s), dtype: Int16}, nil
	case int32:
		return scalarValue{class: scalarSigned, i: int64(s), dtype: Int32}, nil
	case int64:
		return scalarValue{class: scalarSigned, i: s, dtype: Int64}, nil
	case int:
		return scalarValue{class: scalarSigned, i: int64(s), dtype: Int64}, nil
	case uint8:
		return scalarValue{class: scalarUnsigned, u: uint64(s), dtype: Uint8}, nil
	case uint16:
		return scalarValue{class: scalarUnsigned, u: uint64(s), dtype: Uint16}, nil
	case uint32:
		return scalarValue{class: scalarUnsigned, u: uint64(s), dtype: Uint32}, nil
	case uint64:
		return scalarValue{class: scalarUnsigned, u: s, dtype: Uint64}, nil
	case uint:
		return scalarValue{class: scalarUnsigned, u: uint64(s), dtype: Uint64}, nil
	case float32:
		return scalarValue{class: scalarFloat, f: float64(s), dtype: Float32}, nil
	case float64:
		return scalarValue{class: scalarFloat, f: s, dtype: Float64}, nil
	case decimal.Decimal:
		return scalarValue{class: scalarDecimal, d: s, dtype: Decimal}, nil
	case bool:
		return scalarValue{class: scalarBool, b: s, dtype: Bool}, nil
	default:
		return scalarValue{}, errors.Newf(errors.KindUnsupported, "unsupported scalar operand %T", v)
	}
}

// castScalar converts a normalized scalar to a machine numeric kind.
func castScalar[T Number](s scalarValue) T {
	switch s.class {
	case scalarSigned:
		return T(s.i)
	case scalarUnsigned:
		return T(s.u)
	case scalarFloat:
		return T(s.f)
	case scalarDecimal:
		f, _ := s.d.Float64()
		return T(f)
	default:
		if s.b {
			return T(1)
		}
		return T(0)
	}
}

// asDecimal converts a normalized scalar to decimal.
func (s scalarValue) asDecimal() decimal.Decimal {
	switch s.class {
	case scalarSigned:
		return decimal.NewFromInt(s.i)
	case scalarUnsigned:
		return decimal.NewFromUint64(s.u)
	case scalarFloat:
		return decimal.NewFromFloat(s.f)
	default:
		return s.d
	}
}

func lengthMismatch(l, r Column) error {
	return errors.Newf(errors.KindLengthMismatch, "operand columns have lengths %d and %d", l.Len(), r.Len()).
		WithDetail("left", l.Len()).
		WithDetail("right", r.Len())
}

func inPlaceKindError(have, want DataType) error {
	return errors.Newf(errors.KindUnsupported,
		"in-place result kind %s differs from receiver kind %s; a column's kind is immutable", want, have).
		WithDetail("receiver", have.String()).
		WithDetail("result", want.String())
}
