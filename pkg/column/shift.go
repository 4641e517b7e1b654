package column

// Shifts take a plain int amount, never a column. Sub-32-bit integer kinds
// promote to Int32 first, so ByteColumn << 2 yields an Int32 column.

// LeftShift computes c[i] << amount.
func LeftShift(c Column, amount int, inPlace bool) (Column, error) {
	return shift(c, amount, inPlace, true)
}

// RightShift computes c[i] >> amount.
func RightShift(c Column, amount int, inPlace bool) (Column, error) {
	return shift(c, amount, inPlace, false)
}

func shift(c Column, amount int, inPlace, left bool) (Column, error) {
	res, err := shiftResultType(c.DataType())
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
	case Int32:
		return shiftCols[int32](cc, amount, left, useDst), nil
	case Uint32:
		return shiftCols[uint32](cc, amount, left, useDst), nil
	case Int64:
		return shiftCols[int64](cc, amount, left, useDst), nil
	default:
		return shiftCols[uint64](cc, amount, left, useDst), nil
	}
}

func shiftCols[T Integer](cc Column, amount int, left, useDst bool) Column {
	a := cc.(*NumericColumn[T])
	var dst *NumericColumn[T]
	if useDst {
		dst = a
	}
	return shiftTyped(a, dst, amount, left)
}
