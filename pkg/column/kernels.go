package column

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/ajitpratap0/tabula/pkg/bitmap"
	"github.com/ajitpratap0/tabula/pkg/errors"
)

// The elementwise kernels operate on same-kind operands only; the promotion
// engine converts operands before dispatching here. Null law: result[i] is
// null iff either operand slot is null (a scalar operand is never null).
// Integer arithmetic wraps around silently, floats follow IEEE semantics.

type arithOp uint8

const (
	opAdd arithOp = iota
	opSub
	opMul
	opDiv
	opMod
)

var arithOpNames = [...]string{"add", "subtract", "multiply", "divide", "modulo"}

func (op arithOp) String() string { return arithOpNames[op] }

type cmpOp uint8

const (
	cmpEq cmpOp = iota
	cmpNe
	cmpGt
	cmpLt
	cmpGe
	cmpLe
)

type bitOp uint8

const (
	bitAnd bitOp = iota
	bitOr
	bitXor
)

func divideByZero(i int) error {
	return errors.Newf(errors.KindDivideByZero, "division or modulo by zero at index %d", i).
		WithDetail("index", i)
}

func arithFn[T Number](op arithOp) func(T, T) T {
	switch op {
	case opAdd:
		return func(x, y T) T { return x + y }
	case opSub:
		return func(x, y T) T { return x - y }
	case opMul:
		return func(x, y T) T { return x * y }
	case opDiv:
		return func(x, y T) T { return x / y }
	default:
		return modFn[T]
	}
}

// modFn picks the remainder semantics per element kind: fmod for floats,
// machine remainder for integers.
func modFn[T Number](x, y T) T {
	switch any(x).(type) {
	case float32, float64:
		return T(math.Mod(float64(x), float64(y)))
	case uint8, uint16, uint32, uint64:
		return T(uint64(x) % uint64(y))
	default:
		return T(int64(x) % int64(y))
	}
}

// arithTyped computes dst[i] = op(a[i], b[i]) over same-kind columns. dst
// may alias a or b (the promotion engine aims writes at a fresh clone to
// save an allocation) or be nil to allocate. Integer division and modulo
// fail fast on the first valid zero denominator; a zero sitting in a null
// slot does not trip the check.
func arithTyped[T Number](op arithOp, a, b, dst *NumericColumn[T]) (*NumericColumn[T], error) {
	n := len(a.values)
	valid := bitmap.And(a.valid, b.valid)
	if dst == nil {
		dst = &NumericColumn[T]{name: a.name, dtype: a.dtype, values: make([]T, n)}
	}
	fn := arithFn[T](op)
	if (op == opDiv || op == opMod) && a.dtype.IsInteger() {
		for i := 0; i < n; i++ {
			if (b.valid == nil || b.valid.Get(i)) && b.values[i] == 0 {
				return nil, divideByZero(i)
			}
			if valid == nil || valid.Get(i) {
				dst.values[i] = fn(a.values[i], b.values[i])
			}
		}
	} else if valid == nil {
		for i := 0; i < n; i++ {
			dst.values[i] = fn(a.values[i], b.values[i])
		}
	} else {
		for i := 0; i < n; i++ {
			if valid.Get(i) {
				dst.values[i] = fn(a.values[i], b.values[i])
			}
		}
	}
	dst.valid = valid
	return dst, nil
}

// arithScalarTyped broadcasts a scalar. reverse computes s op a[i] instead
// of a[i] op s.
func arithScalarTyped[T Number](op arithOp, a *NumericColumn[T], s T, reverse bool, dst *NumericColumn[T]) (*NumericColumn[T], error) {
	n := len(a.values)
	guardDiv := (op == opDiv || op == opMod) && a.dtype.IsInteger()
	if guardDiv && !reverse && s == 0 {
		return nil, errors.New(errors.KindDivideByZero, "division or modulo by zero scalar")
	}
	fresh := dst == nil
	if fresh {
		dst = &NumericColumn[T]{name: a.name, dtype: a.dtype, values: make([]T, n)}
		if a.valid != nil {
			dst.valid = a.valid.Clone()
		}
	}
	fn := arithFn[T](op)
	for i := 0; i < n; i++ {
		valid := a.valid == nil || a.valid.Get(i)
		if guardDiv && reverse && valid && a.values[i] == 0 {
			return nil, divideByZero(i)
		}
		if !valid {
			continue
		}
		if reverse {
			dst.values[i] = fn(s, a.values[i])
		} else {
			dst.values[i] = fn(a.values[i], s)
		}
	}
	return dst, nil
}

func cmpEval[T Number](op cmpOp, x, y T) bool {
	switch op {
	case cmpEq:
		return x == y
	case cmpNe:
		return x != y
	case cmpGt:
		return x > y
	case cmpLt:
		return x < y
	case cmpGe:
		return x >= y
	default:
		return x <= y
	}
}

// nullCmp pins the null-comparison convention: two nulls are equal, a null
// never equals a value, and ordering against a null is always false.
// NotEquals is the exact negation of Equals.
func nullCmp(op cmpOp, aValid, bValid bool) bool {
	if !aValid && !bValid {
		return op == cmpEq
	}
	return op == cmpNe
}

func compareTyped[T Number](op cmpOp, a, b *NumericColumn[T]) *BoolColumn {
	n := len(a.values)
	out := &BoolColumn{name: a.name, values: bitmap.New(n)}
	for i := 0; i < n; i++ {
		av := a.valid == nil || a.valid.Get(i)
		bv := b.valid == nil || b.valid.Get(i)
		var r bool
		if av && bv {
			r = cmpEval(op, a.values[i], b.values[i])
		} else {
			r = nullCmp(op, av, bv)
		}
		out.values.Set(i, r)
	}
	return out
}

func compareScalarTyped[T Number](op cmpOp, a *NumericColumn[T], s T, reverse bool) *BoolColumn {
	n := len(a.values)
	out := &BoolColumn{name: a.name, values: bitmap.New(n)}
	for i := 0; i < n; i++ {
		if a.valid == nil || a.valid.Get(i) {
			if reverse {
				out.values.Set(i, cmpEval(op, s, a.values[i]))
			} else {
				out.values.Set(i, cmpEval(op, a.values[i], s))
			}
		} else {
			out.values.Set(i, nullCmp(op, false, true))
		}
	}
	return out
}

// Decimal kernels. Decimal is exact like the integers, so a zero divisor is
// an error rather than an infinity.

func decOp(op arithOp, x, y decimal.Decimal) decimal.Decimal {
	switch op {
	case opAdd:
		return x.Add(y)
	case opSub:
		return x.Sub(y)
	case opMul:
		return x.Mul(y)
	case opDiv:
		return x.Div(y)
	default:
		return x.Mod(y)
	}
}

func decimalArithTyped(op arithOp, a, b, dst *DecimalColumn) (*DecimalColumn, error) {
	n := len(a.values)
	valid := bitmap.And(a.valid, b.valid)
	if dst == nil {
		dst = &DecimalColumn{name: a.name, values: make([]decimal.Decimal, n)}
	}
	guardDiv := op == opDiv || op == opMod
	for i := 0; i < n; i++ {
		if guardDiv && (b.valid == nil || b.valid.Get(i)) && b.values[i].IsZero() {
			return nil, divideByZero(i)
		}
		if valid == nil || valid.Get(i) {
			dst.values[i] = decOp(op, a.values[i], b.values[i])
		}
	}
	dst.valid = valid
	return dst, nil
}

func decimalArithScalar(op arithOp, a *DecimalColumn, s decimal.Decimal, reverse bool, dst *DecimalColumn) (*DecimalColumn, error) {
	n := len(a.values)
	guardDiv := op == opDiv || op == opMod
	if guardDiv && !reverse && s.IsZero() {
		return nil, errors.New(errors.KindDivideByZero, "division or modulo by zero scalar")
	}
	if dst == nil {
		dst = &DecimalColumn{name: a.name, values: make([]decimal.Decimal, n)}
		if a.valid != nil {
			dst.valid = a.valid.Clone()
		}
	}
	for i := 0; i < n; i++ {
		valid := a.valid == nil || a.valid.Get(i)
		if guardDiv && reverse && valid && a.values[i].IsZero() {
			return nil, divideByZero(i)
		}
		if !valid {
			continue
		}
		if reverse {
			dst.values[i] = decOp(op, s, a.values[i])
		} else {
			dst.values[i] = decOp(op, a.values[i], s)
		}
	}
	return dst, nil
}

func cmpFromSign(op cmpOp, sign int) bool {
	switch op {
	case cmpEq:
		return sign == 0
	case cmpNe:
		return sign != 0
	case cmpGt:
		return sign > 0
	case cmpLt:
		return sign < 0
	case cmpGe:
		return sign >= 0
	default:
		return sign <= 0
	}
}

func decimalCompare(op cmpOp, a, b *DecimalColumn) *BoolColumn {
	n := len(a.values)
	out := &BoolColumn{name: a.name, values: bitmap.New(n)}
	for i := 0; i < n; i++ {
		av := a.valid == nil || a.valid.Get(i)
		bv := b.valid == nil || b.valid.Get(i)
		var r bool
		if av && bv {
			r = cmpFromSign(op, a.values[i].Cmp(b.values[i]))
		} else {
			r = nullCmp(op, av, bv)
		}
		out.values.Set(i, r)
	}
	return out
}

func decimalCompareScalar(op cmpOp, a *DecimalColumn, s decimal.Decimal, reverse bool) *BoolColumn {
	n := len(a.values)
	out := &BoolColumn{name: a.name, values: bitmap.New(n)}
	for i := 0; i < n; i++ {
		if a.valid == nil || a.valid.Get(i) {
			sign := a.values[i].Cmp(s)
			if reverse {
				sign = -sign
			}
			out.values.Set(i, cmpFromSign(op, sign))
		} else {
			out.values.Set(i, nullCmp(op, false, true))
		}
	}
	return out
}

// Boolean kernels. Column-column logicals run a word at a time.

func boolBitwise(op bitOp, a, b, dst *BoolColumn) *BoolColumn {
	n := a.Len()
	valid := bitmap.And(a.valid, b.valid)
	if dst == nil {
		dst = &BoolColumn{name: a.name, values: bitmap.New(n)}
	}
	aw, bw, dw := a.values.Words(), b.values.Words(), dst.values.Words()
	for j := range dw {
		switch op {
		case bitAnd:
			dw[j] = aw[j] & bw[j]
		case bitOr:
			dw[j] = aw[j] | bw[j]
		default:
			dw[j] = aw[j] ^ bw[j]
		}
	}
	dst.valid = valid
	return dst
}

func boolBitwiseScalar(op bitOp, a *BoolColumn, s bool, dst *BoolColumn) *BoolColumn {
	n := a.Len()
	if dst == nil {
		dst = &BoolColumn{name: a.name, values: bitmap.New(n)}
		if a.valid != nil {
			dst.valid = a.valid.Clone()
		}
	}
	for i := 0; i < n; i++ {
		x := a.values.Get(i)
		var r bool
		switch op {
		case bitAnd:
			r = x && s
		case bitOr:
			r = x || s
		default:
			r = x != s
		}
		dst.values.Set(i, r)
	}
	return dst
}

func boolCompare(op cmpOp, a, b *BoolColumn) *BoolColumn {
	n := a.Len()
	out := &BoolColumn{name: a.name, values: bitmap.New(n)}
	for i := 0; i < n; i++ {
		av := a.valid == nil || a.valid.Get(i)
		bv := b.valid == nil || b.valid.Get(i)
		var r bool
		if av && bv {
			if op == cmpEq {
				r = a.values.Get(i) == b.values.Get(i)
			} else {
				r = a.values.Get(i) != b.values.Get(i)
			}
		} else {
			r = nullCmp(op, av, bv)
		}
		out.values.Set(i, r)
	}
	return out
}

func boolCompareScalar(op cmpOp, a *BoolColumn, s bool) *BoolColumn {
	n := a.Len()
	out := &BoolColumn{name: a.name, values: bitmap.New(n)}
	for i := 0; i < n; i++ {
		if a.valid == nil || a.valid.Get(i) {
			if op == cmpEq {
				out.values.Set(i, a.values.Get(i) == s)
			} else {
				out.values.Set(i, a.values.Get(i) != s)
			}
		} else {
			out.values.Set(i, nullCmp(op, false, true))
		}
	}
	return out
}

// Integer bitwise kernels.

func bitFn[T Integer](op bitOp) func(T, T) T {
	switch op {
	case bitAnd:
		return func(x, y T) T { return x & y }
	case bitOr:
		return func(x, y T) T { return x | y }
	default:
		return func(x, y T) T { return x ^ y }
	}
}

func bitwiseTyped[T Integer](op bitOp, a, b, dst *NumericColumn[T]) *NumericColumn[T] {
	n := len(a.values)
	valid := bitmap.And(a.valid, b.valid)
	if dst == nil {
		dst = &NumericColumn[T]{name: a.name, dtype: a.dtype, values: make([]T, n)}
	}
	fn := bitFn[T](op)
	for i := 0; i < n; i++ {
		if valid == nil || valid.Get(i) {
			dst.values[i] = fn(a.values[i], b.values[i])
		}
	}
	dst.valid = valid
	return dst
}

func bitwiseScalarTyped[T Integer](op bitOp, a *NumericColumn[T], s T, dst *NumericColumn[T]) *NumericColumn[T] {
	n := len(a.values)
	if dst == nil {
		dst = &NumericColumn[T]{name: a.name, dtype: a.dtype, values: make([]T, n)}
		if a.valid != nil {
			dst.valid = a.valid.Clone()
		}
	}
	fn := bitFn[T](op)
	for i := 0; i < n; i++ {
		if a.valid == nil || a.valid.Get(i) {
			dst.values[i] = fn(a.values[i], s)
		}
	}
	return dst
}

// shiftTyped shifts every valid element by a masked count, mirroring the
// host's shift-count masking (&31 for 32-bit kinds, &63 for 64-bit kinds).
// Right shift is arithmetic for signed kinds and logical for unsigned ones,
// which Go's shift operator already provides.
func shiftTyped[T Integer](a, dst *NumericColumn[T], amount int, left bool) *NumericColumn[T] {
	n := len(a.values)
	mask := uint(31)
	if a.dtype == Int64 || a.dtype == Uint64 {
		mask = 63
	}
	sh := uint(amount) & mask
	if dst == nil {
		dst = &NumericColumn[T]{name: a.name, dtype: a.dtype, values: make([]T, n)}
		if a.valid != nil {
			dst.valid = a.valid.Clone()
		}
	}
	for i := 0; i < n; i++ {
		if a.valid == nil || a.valid.Get(i) {
			if left {
				dst.values[i] = a.values[i] << sh
			} else {
				dst.values[i] = a.values[i] >> sh
			}
		}
	}
	return dst
}
