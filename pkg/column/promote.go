package column

import "github.com/ajitpratap0/tabula/pkg/errors"

// promoteArith is the single source of truth for cross-kind result selection.
// It mirrors the host platform's built-in binary numeric promotion exactly,
// quirks included:
//
//   - either operand Decimal promotes to Decimal, floating operands too;
//   - either operand Float64/Float32 promotes to that floating kind;
//   - Uint64 with any signed integer promotes to Float32, NOT a wider
//     integer or Decimal. This is lossy and surprising but deliberate; it is
//     preserved verbatim for compatibility and pinned by tests;
//   - Uint32 with a narrower signed integer promotes to Int64 (Int32 cannot
//     hold the Uint32 range);
//   - everything at or below 32 bits collapses to Int32.
//
// Identity pairs fall out of the rules and skip conversion entirely.
func promoteArith(a, b DataType) (DataType, error) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return 0, errors.Newf(errors.KindUnsupported, "no arithmetic promotion for %s and %s", a, b).
			WithDetail("left", a.String()).
			WithDetail("right", b.String())
	}
	switch {
	case a == Decimal || b == Decimal:
		return Decimal, nil
	case a == Float64 || b == Float64:
		return Float64, nil
	case a == Float32 || b == Float32:
		return Float32, nil
	case a == Uint64 || b == Uint64:
		if a.IsSigned() || b.IsSigned() {
			return Float32, nil
		}
		return Uint64, nil
	case a == Int64 || b == Int64:
		return Int64, nil
	case a == Uint32 || b == Uint32:
		if a.IsSigned() || b.IsSigned() {
			return Int64, nil
		}
		return Uint32, nil
	default:
		return Int32, nil
	}
}

// promoteCompare selects the common comparison kind. Comparisons always
// yield Bool but both operands are converted to a common kind first, using
// the same table as arithmetic. Bool compares only against Bool.
func promoteCompare(a, b DataType) (DataType, error) {
	if a == Bool && b == Bool {
		return Bool, nil
	}
	t, err := promoteArith(a, b)
	if err != nil {
		return 0, errors.Newf(errors.KindUnsupported, "no comparison between %s and %s", a, b).
			WithDetail("left", a.String()).
			WithDetail("right", b.String())
	}
	return t, nil
}

// promoteBitwise selects the result kind for integer bitwise ops. Bool is
// handled by the dedicated boolean kernels; floating and decimal operands
// have no bitwise representation.
func promoteBitwise(a, b DataType) (DataType, error) {
	if a == Bool && b == Bool {
		return Bool, nil
	}
	if !a.IsInteger() || !b.IsInteger() {
		return 0, errors.Newf(errors.KindUnsupported, "no bitwise operation for %s and %s", a, b).
			WithDetail("left", a.String()).
			WithDetail("right", b.String())
	}
	t, err := promoteArith(a, b)
	if err != nil {
		return 0, err
	}
	// Signed with Uint64 promotes to a floating kind, which has no bitwise
	// representation; the host rejects that combination at compile time.
	if !t.IsInteger() {
		return 0, errors.Newf(errors.KindUnsupported, "no common integer kind for bitwise %s and %s", a, b).
			WithDetail("left", a.String()).
			WithDetail("right", b.String())
	}
	return t, nil
}

// shiftResultType applies the host's integer promotion for shift operators:
// sub-32-bit kinds widen to Int32, wider kinds keep their kind.
func shiftResultType(t DataType) (DataType, error) {
	switch t {
	case Int8, Int16, Uint8, Uint16:
		return Int32, nil
	case Int32, Int64, Uint32, Uint64:
		return t, nil
	default:
		return 0, errors.Newf(errors.KindUnsupported, "shift not defined for %s columns", t).
			WithDetail("type", t.String())
	}
}
