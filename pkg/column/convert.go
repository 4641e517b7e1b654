package column

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/ajitpratap0/tabula/pkg/errors"
)

// Conversion follows numeric cast semantics: unchecked (the default)
// truncates on narrowing, matching legacy behavior; checked mode fails with
// KindOverflow when a value does not fit the target kind. Nulls stay null
// either way, and the destination never shares a buffer with the source.

func convertNumeric[S Number](src *NumericColumn[S], to DataType, checked bool) (Column, error) {
	if to == src.dtype {
		return src.clone(), nil
	}
	switch to {
	case Int8:
		return castColumn[S, int8](src, checked)
	case Int16:
		return castColumn[S, int16](src, checked)
	case Int32:
		return castColumn[S, int32](src, checked)
	case Int64:
		return castColumn[S, int64](src, checked)
	case Uint8:
		return castColumn[S, uint8](src, checked)
	case Uint16:
		return castColumn[S, uint16](src, checked)
	case Uint32:
		return castColumn[S, uint32](src, checked)
	case Uint64:
		return castColumn[S, uint64](src, checked)
	case Float32:
		return castColumn[S, float32](src, checked)
	case Float64:
		return castColumn[S, float64](src, checked)
	case Decimal:
		return numericToDecimal(src), nil
	default:
		return nil, errors.Newf(errors.KindUnsupported, "cannot convert %s column %q to %s",
			src.dtype, src.name, to)
	}
}

func castColumn[S, D Number](src *NumericColumn[S], checked bool) (*NumericColumn[D], error) {
	dst := &NumericColumn[D]{
		name:   src.name,
		dtype:  dataTypeOf[D](),
		values: make([]D, len(src.values)),
	}
	if src.valid != nil {
		dst.valid = src.valid.Clone()
	}
	srcK := src.dtype
	dstK := dst.dtype
	for i, v := range src.values {
		if src.IsNull(i) {
			continue
		}
		d := D(v)
		if checked && !fits(v, srcK, dstK) {
			return nil, errors.Newf(errors.KindOverflow, "value %v of column %q does not fit %s",
				v, src.name, dstK).
				WithDetail("index", i).
				WithDetail("from", srcK.String()).
				WithDetail("to", dstK.String())
		}
		dst.values[i] = d
	}
	return dst, nil
}

// fits reports whether v survives conversion to dstK without losing range.
// Fractional truncation is allowed even in checked mode, like a checked
// cast on the host platform.
func fits[S Number](v S, srcK, dstK DataType) bool {
	if dstK.IsFloating() {
		return true
	}
	if srcK.IsFloating() {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
		lo, hi := integerKindRange(dstK)
		// float64 rounds MaxInt64/MaxUint64 up to 2^63/2^64, one past the
		// kind, so the 64-bit bounds are exclusive.
		if dstK == Int64 || dstK == Uint64 {
			return f >= lo && f < hi
		}
		return f >= lo && f <= hi
	}
	if dstK.IsUnsigned() && v < S(0) {
		return false
	}
	// Integer round trip catches truncation. A same-width unsigned source
	// wraps back to itself through the signed kind, so signed destinations
	// also reject a negative converted value.
	unsigned := srcK.IsUnsigned()
	switch dstK {
	case Int8:
		return S(int8(v)) == v && !(unsigned && int8(v) < 0)
	case Int16:
		return S(int16(v)) == v && !(unsigned && int16(v) < 0)
	case Int32:
		return S(int32(v)) == v && !(unsigned && int32(v) < 0)
	case Int64:
		return S(int64(v)) == v && !(unsigned && int64(v) < 0)
	case Uint8:
		return S(uint8(v)) == v
	case Uint16:
		return S(uint16(v)) == v
	case Uint32:
		return S(uint32(v)) == v
	default:
		return S(uint64(v)) == v
	}
}

// integerKindRange returns the representable range of an integer kind as
// float64 bounds.
func integerKindRange(t DataType) (float64, float64) {
	switch t {
	case Int8:
		return math.MinInt8, math.MaxInt8
	case Int16:
		return math.MinInt16, math.MaxInt16
	case Int32:
		return math.MinInt32, math.MaxInt32
	case Int64:
		return math.MinInt64, math.MaxInt64
	case Uint8:
		return 0, math.MaxUint8
	case Uint16:
		return 0, math.MaxUint16
	case Uint32:
		return 0, math.MaxUint32
	default:
		return 0, math.MaxUint64
	}
}

func numericToDecimal[S Number](src *NumericColumn[S]) *DecimalColumn {
	dst := &DecimalColumn{
		name:   src.name,
		values: make([]decimal.Decimal, len(src.values)),
	}
	if src.valid != nil {
		dst.valid = src.valid.Clone()
	}
	signed := src.dtype.IsSigned()
	floating := src.dtype.IsFloating()
	for i, v := range src.values {
		if src.IsNull(i) {
			continue
		}
		switch {
		case floating:
			dst.values[i] = decimal.NewFromFloat(float64(v))
		case signed:
			dst.values[i] = decimal.NewFromInt(int64(v))
		default:
			dst.values[i] = decimal.NewFromUint64(uint64(v))
		}
	}
	return dst
}

func convertDecimal(src *DecimalColumn, to DataType, checked bool) (Column, error) {
	if to == Decimal {
		return src.clone(), nil
	}
	switch to {
	case Int8:
		return decimalToNumeric[int8](src, checked)
	case Int16:
		return decimalToNumeric[int16](src, checked)
	case Int32:
		return decimalToNumeric[int32](src, checked)
	case Int64:
		return decimalToNumeric[int64](src, checked)
	case Uint8:
		return decimalToNumeric[uint8](src, checked)
	case Uint16:
		return decimalToNumeric[uint16](src, checked)
	case Uint32:
		return decimalToNumeric[uint32](src, checked)
	case Uint64:
		return decimalToNumeric[uint64](src, checked)
	case Float32:
		return decimalToNumeric[float32](src, checked)
	case Float64:
		return decimalToNumeric[float64](src, checked)
	default:
		return nil, errors.Newf(errors.KindUnsupported, "cannot convert decimal column %q to %s",
			src.name, to)
	}
}

func decimalToNumeric[D Number](src *DecimalColumn, checked bool) (*NumericColumn[D], error) {
	dst := &NumericColumn[D]{
		name:   src.name,
		dtype:  dataTypeOf[D](),
		values: make([]D, len(src.values)),
	}
	if src.valid != nil {
		dst.valid = src.valid.Clone()
	}
	dstK := dst.dtype
	for i, v := range src.values {
		if src.IsNull(i) {
			continue
		}
		f, _ := v.Float64()
		if checked && !dstK.IsFloating() {
			lo, hi := integerKindRange(dstK)
			if f < lo || f > hi {
				return nil, errors.Newf(errors.KindOverflow, "decimal %s of column %q does not fit %s",
					v, src.name, dstK).
					WithDetail("index", i).
					WithDetail("to", dstK.String())
			}
		}
		if dstK.IsFloating() {
			dst.values[i] = D(f)
		} else if dstK.IsSigned() {
			dst.values[i] = D(v.IntPart())
		} else {
			dst.values[i] = D(v.BigInt().Uint64())
		}
	}
	return dst, nil
}
