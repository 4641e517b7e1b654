package column

import "github.com/ajitpratap0/tabula/pkg/errors"

// Comparisons share the arithmetic promotion table: both operands are
// converted to the common comparison kind first, and the result is always a
// BoolColumn of the same length with no nulls.

// ElementwiseEquals compares l[i] == right[i] (or a broadcast scalar).
func ElementwiseEquals(l Column, right interface{}) (*BoolColumn, error) {
	return compareEntry(cmpEq, l, right)
}

// ElementwiseNotEquals is the exact negation of ElementwiseEquals.
func ElementwiseNotEquals(l Column, right interface{}) (*BoolColumn, error) {
	return compareEntry(cmpNe, l, right)
}

// ElementwiseGreaterThan compares l[i] > right[i].
func ElementwiseGreaterThan(l Column, right interface{}) (*BoolColumn, error) {
	return compareEntry(cmpGt, l, right)
}

// ElementwiseLessThan compares l[i] < right[i].
func ElementwiseLessThan(l Column, right interface{}) (*BoolColumn, error) {
	return compareEntry(cmpLt, l, right)
}

// ElementwiseGreaterThanOrEqual compares l[i] >= right[i].
func ElementwiseGreaterThanOrEqual(l Column, right interface{}) (*BoolColumn, error) {
	return compareEntry(cmpGe, l, right)
}

// ElementwiseLessThanOrEqual compares l[i] <= right[i].
func ElementwiseLessThanOrEqual(l Column, right interface{}) (*BoolColumn, error) {
	return compareEntry(cmpLe, l, right)
}

func compareEntry(op cmpOp, l Column, right interface{}) (*BoolColumn, error) {
	if rc, ok := right.(Column); ok {
		return compareColumns(op, l, rc)
	}
	return compareScalar(op, l, right, false)
}

func isOrdering(op cmpOp) bool {
	return op != cmpEq && op != cmpNe
}

func compareColumns(op cmpOp, l, r Column) (*BoolColumn, error) {
	if l.Len() != r.Len() {
		return nil, lengthMismatch(l, r)
	}
	res, err := promoteCompare(l.DataType(), r.DataType())
	if err != nil {
		return nil, err
	}
	if res == Bool {
		if isOrdering(op) {
			return nil, errors.New(errors.KindUnsupported, "bool columns have no ordering comparison")
		}
		return boolCompare(op, l.(*BoolColumn), r.(*BoolColumn)), nil
	}
	lc := l
	if l.DataType() != res {
		if lc, err = l.CloneAsType(res); err != nil {
			return nil, err
		}
	}
	rc := r
	if r.DataType() != res {
		if rc, err = r.CloneAsType(res); err != nil {
			return nil, err
		}
	}
	if res == Decimal {
		return decimalCompare(op, lc.(*DecimalColumn), rc.(*DecimalColumn)), nil
	}
	switch res {
	case Int8:
		return compareCols[int8](op, lc, rc), nil
	case Int16:
		return compareCols[int16](op, lc, rc), nil
	case Int32:
		return compareCols[int32](op, lc, rc), nil
	case Int64:
		return compareCols[int64](op, lc, rc), nil
	case Uint8:
		return compareCols[uint8](op, lc, rc), nil
	case Uint16:
		return compareCols[uint16](op, lc, rc), nil
	case Uint32:
		return compareCols[uint32](op, lc, rc), nil
	case Uint64:
		return compareCols[uint64](op, lc, rc), nil
	case Float32:
		return compareCols[float32](op, lc, rc), nil
	default:
		return compareCols[float64](op, lc, rc), nil
	}
}

func compareCols[T Number](op cmpOp, lc, rc Column) *BoolColumn {
	return compareTyped(op, lc.(*NumericColumn[T]), rc.(*NumericColumn[T]))
}

// compareScalar handles column-vs-scalar; reverse mirrors the comparison
// for the scalar-on-the-left façade forms.
func compareScalar(op cmpOp, c Column, v interface{}, reverse bool) (*BoolColumn, error) {
	s, err := normalizeScalar(v)
	if err != nil {
		return nil, err
	}
	res, err := promoteCompare(c.DataType(), s.dtype)
	if err != nil {
		return nil, err
	}
	if res == Bool {
		if isOrdering(op) {
			return nil, errors.New(errors.KindUnsupported, "bool columns have no ordering comparison")
		}
		return boolCompareScalar(op, c.(*BoolColumn), s.b), nil
	}
	cc := c
	if c.DataType() != res {
		if cc, err = c.CloneAsType(res); err != nil {
			return nil, err
		}
	}
	if res == Decimal {
		return decimalCompareScalar(op, cc.(*DecimalColumn), s.asDecimal(), reverse), nil
	}
	switch res {
	case Int8:
		return compareScalarCols[int8](op, cc, s, reverse), nil
	case Int16:
		return compareScalarCols[int16](op, cc, s, reverse), nil
	case Int32:
		return compareScalarCols[int32](op, cc, s, reverse), nil
	case Int64:
		return compareScalarCols[int64](op, cc, s, reverse), nil
	case Uint8:
		return compareScalarCols[uint8](op, cc, s, reverse), nil
	case Uint16:
		return compareScalarCols[uint16](op, cc, s, reverse), nil
	case Uint32:
		return compareScalarCols[uint32](op, cc, s, reverse), nil
	case Uint64:
		return compareScalarCols[uint64](op, cc, s, reverse), nil
	case Float32:
		return compareScalarCols[float32](op, cc, s, reverse), nil
	default:
		return compareScalarCols[float64](op, cc, s, reverse), nil
	}
}

func compareScalarCols[T Number](op cmpOp, cc Column, s scalarValue, reverse bool) *BoolColumn {
	return compareScalarTyped(op, cc.(*NumericColumn[T]), castScalar[T](s), reverse)
}
