package column

import "github.com/ajitpratap0/tabula/pkg/errors"

// Go has no operator overloading, so the symbolic-operator surface is an
// opcode dispatcher: Eval maps an Op and two operands (columns or scalars)
// to the named-method API, routing scalar-on-the-left forms through the
// Reverse* variants so that Eval(OpSubtract, 5, col) computes 5 - col[i].

// Op identifies a binary elementwise operation.
type Op uint8

const (
	OpAdd Op = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
	OpEquals
	OpNotEquals
	OpGreaterThan
	OpLessThan
	OpGreaterThanOrEqual
	OpLessThanOrEqual
	OpAnd
	OpOr
	OpXor
	OpLeftShift
	OpRightShift
)

var opNames = [...]string{
	OpAdd:                "+",
	OpSubtract:           "-",
	OpMultiply:           "*",
	OpDivide:             "/",
	OpModulo:             "%",
	OpEquals:             "==",
	OpNotEquals:          "!=",
	OpGreaterThan:        ">",
	OpLessThan:           "<",
	OpGreaterThanOrEqual: ">=",
	OpLessThanOrEqual:    "<=",
	OpAnd:                "&",
	OpOr:                 "|",
	OpXor:                "^",
	OpLeftShift:          "<<",
	OpRightShift:         ">>",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "?"
}

func (op Op) isArith() bool {
	return op <= OpModulo
}

func (op Op) isCompare() bool {
	return op >= OpEquals && op <= OpLessThanOrEqual
}

func (op Op) isBitwise() bool {
	return op >= OpAnd && op <= OpXor
}

var arithByOp = map[Op]arithOp{
	OpAdd:      opAdd,
	OpSubtract: opSub,
	OpMultiply: opMul,
	OpDivide:   opDiv,
	OpModulo:   opMod,
}

var cmpByOp = map[Op]cmpOp{
	OpEquals:             cmpEq,
	OpNotEquals:          cmpNe,
	OpGreaterThan:        cmpGt,
	OpLessThan:           cmpLt,
	OpGreaterThanOrEqual: cmpGe,
	OpLessThanOrEqual:    cmpLe,
}

var bitByOp = map[Op]bitOp{
	OpAnd: bitAnd,
	OpOr:  bitOr,
	OpXor: bitXor,
}

// Eval evaluates left op right. Each side is a Column or a scalar; at least
// one side must be a column. Results are copy-mode: Eval never mutates its
// operands.
func Eval(op Op, left, right interface{}) (Column, error) {
	lcol, lIsCol := left.(Column)
	rcol, rIsCol := right.(Column)

	switch {
	case op.isArith():
		switch {
		case lIsCol && rIsCol:
			return binaryArith(arithByOp[op], lcol, rcol, false)
		case lIsCol:
			return scalarArith(arithByOp[op], lcol, right, false, false)
		case rIsCol:
			return scalarArith(arithByOp[op], rcol, left, true, false)
		}
	case op.isCompare():
		switch {
		case lIsCol && rIsCol:
			return boolResult(compareColumns(cmpByOp[op], lcol, rcol))
		case lIsCol:
			return boolResult(compareScalar(cmpByOp[op], lcol, right, false))
		case rIsCol:
			return boolResult(compareScalar(cmpByOp[op], rcol, left, true))
		}
	case op.isBitwise():
		switch {
		case lIsCol && rIsCol:
			return bitwiseColumns(bitByOp[op], lcol, rcol, false)
		case lIsCol:
			return bitwiseScalar(bitByOp[op], lcol, right, false)
		case rIsCol:
			// & | ^ are commutative, so the scalar side is interchangeable.
			return bitwiseScalar(bitByOp[op], rcol, left, false)
		}
	default:
		// Shifts: the amount is always a plain int on the right; there is
		// no amount-on-the-left form.
		if !lIsCol {
			return nil, errors.Newf(errors.KindUnsupported, "shift requires a column on the left of %s", op)
		}
		amount, ok := right.(int)
		if !ok {
			return nil, errors.Newf(errors.KindUnsupported, "shift amount must be int, got %T", right)
		}
		return shift(lcol, amount, false, op == OpLeftShift)
	}
	return nil, errors.Newf(errors.KindUnsupported, "%s requires at least one column operand", op)
}

func boolResult(c *BoolColumn, err error) (Column, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}
