package column

import "github.com/ajitpratap0/tabula/pkg/errors"

// Bitwise ops are defined for Bool columns (logical and/or/xor) and for
// integer columns under arithmetic promotion. right is a Column or a
// scalar.

// And computes l[i] & right[i].
func And(l Column, right interface{}, inPlace bool) (Column, error) {
	return bitwiseEntry(bitAnd, l, right, inPlace)
}

// Or computes l[i] | right[i].
func Or(l Column, right interface{}, inPlace bool) (Column, error) {
	return bitwiseEntry(bitOr, l, right, inPlace)
}

// Xor computes l[i] ^ right[i].
func Xor(l Column, right interface{}, inPlace bool) (Column, error) {
	return bitwiseEntry(bitXor, l, right, inPlace)
}

func bitwiseEntry(op bitOp, l Column, right interface{}, inPlace bool) (Column, error) {
	if rc, ok := right.(Column); ok {
		return bitwiseColumns(op, l, rc, inPlace)
	}
	return bitwiseScalar(op, l, right, inPlace)
}

func bitwiseColumns(op bitOp, l, r Column, inPlace bool) (Column, error) {
	if l.Len() != r.Len() {
		return nil, lengthMismatch(l, r)
	}
	res, err := promoteBitwise(l.DataType(), r.DataType())
	if err != nil {
		return nil, err
	}
	if inPlace && l.DataType() != res {
		return nil, inPlaceKindError(l.DataType(), res)
	}
	if res == Bool {
		a, b := l.(*BoolColumn), r.(*BoolColumn)
		var dst *BoolColumn
		if inPlace {
			dst = a
		}
		return boolBitwise(op, a, b, dst), nil
	}
	lc, lCloned := l, false
	if l.DataType() != res {
		if lc, err = l.CloneAsType(res); err != nil {
			return nil, err
		}
		lCloned = true
	}
	rc, rCloned := r, false
	if r.DataType() != res {
		if rc, err = r.CloneAsType(res); err != nil {
			return nil, err
		}
		rCloned = true
	}
	useL := inPlace || lCloned
	useR := !useL && rCloned
	switch res {
	case Int8:
		return bitwiseCols[int8](op, lc, rc, useL, useR), nil
	case Int16:
		return bitwiseCols[int16](op, lc, rc, useL, useR), nil
	case Int32:
		return bitwiseCols[int32](op, lc, rc, useL, useR), nil
	case Int64:
		return bitwiseCols[int64](op, lc, rc, useL, useR), nil
	case Uint8:
		return bitwiseCols[uint8](op, lc, rc, useL, useR), nil
	case Uint16:
		return bitwiseCols[uint16](op, lc, rc, useL, useR), nil
	case Uint32:
		return bitwiseCols[uint32](op, lc, rc, useL, useR), nil
	default:
		return bitwiseCols[uint64](op, lc, rc, useL, useR), nil
	}
}

func bitwiseCols[T Integer](op bitOp, lc, rc Column, useL, useR bool) Column {
	a, b := lc.(*NumericColumn[T]), rc.(*NumericColumn[T])
	var dst *NumericColumn[T]
	if useL {
		dst = a
	} else if useR {
		dst = b
	}
	return bitwiseTyped(op, a, b, dst)
}

func bitwiseScalar(op bitOp, c Column, v interface{}, inPlace bool) (Column, error) {
	s, err := normalizeScalar(v)
	if err != nil {
		return nil, err
	}
	if c.DataType() == Bool || s.dtype == Bool {
		if c.DataType() != Bool || s.dtype != Bool {
			return nil, errors.Newf(errors.KindUnsupported, "no bitwise operation for %s and %s",
				c.DataType(), s.dtype)
		}
		a := c.(*BoolColumn)
		var dst *BoolColumn
		if inPlace {
			dst = a
		}
		return boolBitwiseScalar(op, a, s.b, dst), nil
	}
	res, err := promoteBitwise(c.DataType(), s.dtype)
	if err != nil {
		return nil, err
	}
	if inPlace && c.DataType() != res {
		return nil, inPlaceKindError(c.DataType(), res)
	}
	cc, cloned := c, false
	if c.DataType() != res {
		if cc, err = c.CloneAsType(res); err != nil {
			return nil, err
		}
		cloned = true
	}
	useDst := inPlace || cloned
	switch res {
	case Int8:
		return bitwiseScalarCols[int8](op, cc, s, useDst), nil
	case Int16:
		return bitwiseScalarCols[int16](op, cc, s, useDst), nil
	case Int32:
		return bitwiseScalarCols[int32](op, cc, s, useDst), nil
	case Int64:
		return bitwiseScalarCols[int64](op, cc, s, useDst), nil
	case Uint8:
		return bitwiseScalarCols[uint8](op, cc, s, useDst), nil
	case Uint16:
		return bitwiseScalarCols[uint16](op, cc, s, useDst), nil
	case Uint32:
		return bitwiseScalarCols[uint32](op, cc, s, useDst), nil
	default:
		return bitwiseScalarCols[uint64](op, cc, s, useDst), nil
	}
}

func bitwiseScalarCols[T Integer](op bitOp, cc Column, s scalarValue, useDst bool) Column {
	a := cc.(*NumericColumn[T])
	var dst *NumericColumn[T]
	if useDst {
		dst = a
	}
	return bitwiseScalarTyped(op, a, castScalar[T](s), dst)
}
