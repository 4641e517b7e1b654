package column

// The five-step procedure shared by every binary arithmetic operation:
// promote, clone-convert each mismatched operand, aim the kernel at a fresh
// clone when one exists (or honor the caller's inPlace flag when none),
// run the same-kind kernel, return the result column of the promoted kind.

// Add computes l[i] + r[i] under promotion.
func Add(l, r Column, inPlace bool) (Column, error) {
	return binaryArith(opAdd, l, r, inPlace)
}

// Subtract computes l[i] - r[i] under promotion.
func Subtract(l, r Column, inPlace bool) (Column, error) {
	return binaryArith(opSub, l, r, inPlace)
}

// Multiply computes l[i] * r[i] under promotion.
func Multiply(l, r Column, inPlace bool) (Column, error) {
	return binaryArith(opMul, l, r, inPlace)
}

// Divide computes l[i] / r[i] under promotion. Integer and decimal kernels
// fail fast with KindDivideByZero on a valid zero denominator; floating
// kernels produce IEEE infinities and NaNs instead.
func Divide(l, r Column, inPlace bool) (Column, error) {
	return binaryArith(opDiv, l, r, inPlace)
}

// Modulo computes l[i] % r[i] under promotion, with fmod semantics for
// floating kinds.
func Modulo(l, r Column, inPlace bool) (Column, error) {
	return binaryArith(opMod, l, r, inPlace)
}

// Scalar forms broadcast the scalar across every row.

// AddScalar computes c[i] + v.
func AddScalar(c Column, v interface{}, inPlace bool) (Column, error) {
	return scalarArith(opAdd, c, v, false, inPlace)
}

// SubtractScalar computes c[i] - v.
func SubtractScalar(c Column, v interface{}, inPlace bool) (Column, error) {
	return scalarArith(opSub, c, v, false, inPlace)
}

// MultiplyScalar computes c[i] * v.
func MultiplyScalar(c Column, v interface{}, inPlace bool) (Column, error) {
	return scalarArith(opMul, c, v, false, inPlace)
}

// DivideScalar computes c[i] / v.
func DivideScalar(c Column, v interface{}, inPlace bool) (Column, error) {
	return scalarArith(opDiv, c, v, false, inPlace)
}

// ModuloScalar computes c[i] % v.
func ModuloScalar(c Column, v interface{}, inPlace bool) (Column, error) {
	return scalarArith(opMod, c, v, false, inPlace)
}

// Reverse forms compute v op c[i]; the order matters for subtract, divide
// and modulo.

// ReverseAddScalar computes v + c[i].
func ReverseAddScalar(c Column, v interface{}, inPlace bool) (Column, error) {
	return scalarArith(opAdd, c, v, true, inPlace)
}

// ReverseSubtractScalar computes v - c[i].
func ReverseSubtractScalar(c Column, v interface{}, inPlace bool) (Column, error) {
	return scalarArith(opSub, c, v, true, inPlace)
}

// ReverseMultiplyScalar computes v * c[i].
func ReverseMultiplyScalar(c Column, v interface{}, inPlace bool) (Column, error) {
	return scalarArith(opMul, c, v, true, inPlace)
}

// ReverseDivideScalar computes v / c[i].
func ReverseDivideScalar(c Column, v interface{}, inPlace bool) (Column, error) {
	return scalarArith(opDiv, c, v, true, inPlace)
}

// ReverseModuloScalar computes v % c[i].
func ReverseModuloScalar(c Column, v interface{}, inPlace bool) (Column, error) {
	return scalarArith(opMod, c, v, true, inPlace)
}

func binaryArith(op arithOp, l, r Column, inPlace bool) (Column, error) {
	if l.Len() != r.Len() {
		return nil, lengthMismatch(l, r)
	}
	res, err := promoteArith(l.DataType(), r.DataType())
	if err != nil {
		return nil, err
	}
	if inPlace && l.DataType() != res {
		return nil, inPlaceKindError(l.DataType(), res)
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
	// Write into the left operand when the caller asked for in-place or a
	// promotion temporary exists; a freshly cloned right operand is an
	// equally good target since the kernel reads both slots before writing.
	useL := inPlace || lCloned
	useR := !useL && rCloned
	if res == Decimal {
		a, b := lc.(*DecimalColumn), rc.(*DecimalColumn)
		var dst *DecimalColumn
		if useL {
			dst = a
		} else if useR {
			dst = b
		}
		out, err := decimalArithTyped(op, a, b, dst)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
	switch res {
	case Int8:
		return arithCols[int8](op, lc, rc, useL, useR)
	case Int16:
		return arithCols[int16](op, lc, rc, useL, useR)
	case Int32:
		return arithCols[int32](op, lc, rc, useL, useR)
	case Int64:
		return arithCols[int64](op, lc, rc, useL, useR)
	case Uint8:
		return arithCols[uint8](op, lc, rc, useL, useR)
	case Uint16:
		return arithCols[uint16](op, lc, rc, useL, useR)
	case Uint32:
		return arithCols[uint32](op, lc, rc, useL, useR)
	case Uint64:
		return arithCols[uint64](op, lc, rc, useL, useR)
	case Float32:
		return arithCols[float32](op, lc, rc, useL, useR)
	default:
		return arithCols[float64](op, lc, rc, useL, useR)
	}
}

func arithCols[T Number](op arithOp, lc, rc Column, useL, useR bool) (Column, error) {
	a, b := lc.(*NumericColumn[T]), rc.(*NumericColumn[T])
	var dst *NumericColumn[T]
	if useL {
		dst = a
	} else if useR {
		dst = b
	}
	out, err := arithTyped(op, a, b, dst)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func scalarArith(op arithOp, c Column, v interface{}, reverse, inPlace bool) (Column, error) {
	s, err := normalizeScalar(v)
	if err != nil {
		return nil, err
	}
	res, err := promoteArith(c.DataType(), s.dtype)
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
	if res == Decimal {
		a := cc.(*DecimalColumn)
		var dst *DecimalColumn
		if useDst {
			dst = a
		}
		out, err := decimalArithScalar(op, a, s.asDecimal(), reverse, dst)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
	switch res {
	case Int8:
		return scalarArithCols[int8](op, cc, s, reverse, useDst)
	case Int16:
		return scalarArithCols[int16](op, cc, s, reverse, useDst)
	case Int32:
		return scalarArithCols[int32](op, cc, s, reverse, useDst)
	case Int64:
		return scalarArithCols[int64](op, cc, s, reverse, useDst)
	case Uint8:
		return scalarArithCols[uint8](op, cc, s, reverse, useDst)
	case Uint16:
		return scalarArithCols[uint16](op, cc, s, reverse, useDst)
	case Uint32:
		return scalarArithCols[uint32](op, cc, s, reverse, useDst)
	case Uint64:
		return scalarArithCols[uint64](op, cc, s, reverse, useDst)
	case Float32:
		return scalarArithCols[float32](op, cc, s, reverse, useDst)
	default:
		return scalarArithCols[float64](op, cc, s, reverse, useDst)
	}
}

func scalarArithCols[T Number](op arithOp, cc Column, s scalarValue, reverse, useDst bool) (Column, error) {
	a := cc.(*NumericColumn[T])
	var dst *NumericColumn[T]
	if useDst {
		dst = a
	}
	out, err := arithScalarTyped(op, a, castScalar[T](s), reverse, dst)
	if err != nil {
		return nil, err
	}
	return out, nil
}
