package column

import (
	"github.com/ajitpratap0/tabula/pkg/bitmap"
	"github.com/ajitpratap0/tabula/pkg/errors"
)

// NumericColumn stores elements of one machine numeric kind in a packed
// buffer with a parallel validity bitmap. The zero bitmap (nil) means the
// column has no nulls.
type NumericColumn[T Number] struct {
	name   string
	dtype  DataType
	values []T
	valid  *bitmap.Bitmap
}

// NewNumeric allocates an empty numeric column with the given capacity.
func NewNumeric[T Number](name string, capacity int) *NumericColumn[T] {
	return &NumericColumn[T]{
		name:   name,
		dtype:  dataTypeOf[T](),
		values: make([]T, 0, capacity),
	}
}

// FromSlice wraps a value slice as a column with no nulls. The slice is
// copied; columns never share buffers.
func FromSlice[T Number](name string, vals []T) *NumericColumn[T] {
	c := NewNumeric[T](name, len(vals))
	c.values = append(c.values, vals...)
	return c
}

// FromPtrs builds a column from pointers, treating nil as null.
func FromPtrs[T Number](name string, vals []*T) *NumericColumn[T] {
	c := NewNumeric[T](name, len(vals))
	for _, v := range vals {
		if v == nil {
			c.AppendNull()
		} else {
			c.Append(*v)
		}
	}
	return c
}

func (c *NumericColumn[T]) Name() string        { return c.name }
func (c *NumericColumn[T]) SetName(name string) { c.name = name }
func (c *NumericColumn[T]) DataType() DataType  { return c.dtype }
func (c *NumericColumn[T]) Len() int            { return len(c.values) }

// NullCount derives from the validity popcount.
func (c *NumericColumn[T]) NullCount() int {
	if c.valid == nil {
		return 0
	}
	return c.Len() - c.valid.Count()
}

func (c *NumericColumn[T]) IsNull(i int) bool {
	return c.valid != nil && !c.valid.Get(i)
}

// Get returns the element at i and whether it is valid.
func (c *NumericColumn[T]) Get(i int) (T, bool) {
	if c.IsNull(i) {
		var zero T
		return zero, false
	}
	return c.values[i], true
}

func (c *NumericColumn[T]) Value(i int) interface{} {
	if c.IsNull(i) {
		return nil
	}
	return c.values[i]
}

// Values exposes the backing buffer. Callers must not resize it.
func (c *NumericColumn[T]) Values() []T { return c.values }

// Append adds a valid element.
func (c *NumericColumn[T]) Append(v T) {
	c.values = append(c.values, v)
	if c.valid != nil {
		c.valid.Append(true)
	}
}

// AppendNull adds a null slot. The stored value is unspecified.
func (c *NumericColumn[T]) AppendNull() {
	if c.valid == nil {
		c.valid = bitmap.NewAllSet(len(c.values))
	}
	var zero T
	c.values = append(c.values, zero)
	c.valid.Append(false)
}

func (c *NumericColumn[T]) AppendValue(v interface{}) error {
	if v == nil {
		c.AppendNull()
		return nil
	}
	if tv, ok := v.(T); ok {
		c.Append(tv)
		return nil
	}
	s, err := normalizeScalar(v)
	if err != nil {
		return err
	}
	if s.class == scalarBool {
		return errors.Newf(errors.KindConversion, "cannot append bool to %s column %q", c.dtype, c.name)
	}
	c.Append(castScalar[T](s))
	return nil
}

// Set overwrites the element at i and marks it valid.
func (c *NumericColumn[T]) Set(i int, v T) {
	c.values[i] = v
	if c.valid != nil {
		c.valid.Set(i, true)
	}
}

// SetNull marks the slot at i null.
func (c *NumericColumn[T]) SetNull(i int) {
	if c.valid == nil {
		c.valid = bitmap.NewAllSet(len(c.values))
	}
	c.valid.Set(i, false)
}

func (c *NumericColumn[T]) clone() *NumericColumn[T] {
	cp := &NumericColumn[T]{
		name:   c.name,
		dtype:  c.dtype,
		values: make([]T, len(c.values)),
	}
	copy(cp.values, c.values)
	if c.valid != nil {
		cp.valid = c.valid.Clone()
	}
	return cp
}

func (c *NumericColumn[T]) Clone() Column { return c.clone() }

func (c *NumericColumn[T]) CloneAsType(t DataType) (Column, error) {
	return convertNumeric(c, t, false)
}

func (c *NumericColumn[T]) CloneAsTypeChecked(t DataType) (Column, error) {
	return convertNumeric(c, t, true)
}

// Arithmetic surface. The receiver delegates to the promotion engine; the
// result kind follows the promotion table, not the receiver's kind.

func (c *NumericColumn[T]) Add(other Column, inPlace bool) (Column, error) {
	return Add(c, other, inPlace)
}

func (c *NumericColumn[T]) Subtract(other Column, inPlace bool) (Column, error) {
	return Subtract(c, other, inPlace)
}

func (c *NumericColumn[T]) Multiply(other Column, inPlace bool) (Column, error) {
	return Multiply(c, other, inPlace)
}

func (c *NumericColumn[T]) Divide(other Column, inPlace bool) (Column, error) {
	return Divide(c, other, inPlace)
}

func (c *NumericColumn[T]) Modulo(other Column, inPlace bool) (Column, error) {
	return Modulo(c, other, inPlace)
}

func (c *NumericColumn[T]) AddScalar(v interface{}, inPlace bool) (Column, error) {
	return AddScalar(c, v, inPlace)
}

func (c *NumericColumn[T]) SubtractScalar(v interface{}, inPlace bool) (Column, error) {
	return SubtractScalar(c, v, inPlace)
}

func (c *NumericColumn[T]) MultiplyScalar(v interface{}, inPlace bool) (Column, error) {
	return MultiplyScalar(c, v, inPlace)
}

func (c *NumericColumn[T]) DivideScalar(v interface{}, inPlace bool) (Column, error) {
	return DivideScalar(c, v, inPlace)
}

func (c *NumericColumn[T]) ModuloScalar(v interface{}, inPlace bool) (Column, error) {
	return ModuloScalar(c, v, inPlace)
}

// Reverse* compute scalar op column[i]; the distinction matters for the
// non-commutative operations.

func (c *NumericColumn[T]) ReverseAddScalar(v interface{}, inPlace bool) (Column, error) {
	return ReverseAddScalar(c, v, inPlace)
}

func (c *NumericColumn[T]) ReverseSubtractScalar(v interface{}, inPlace bool) (Column, error) {
	return ReverseSubtractScalar(c, v, inPlace)
}

func (c *NumericColumn[T]) ReverseMultiplyScalar(v interface{}, inPlace bool) (Column, error) {
	return ReverseMultiplyScalar(c, v, inPlace)
}

func (c *NumericColumn[T]) ReverseDivideScalar(v interface{}, inPlace bool) (Column, error) {
	return ReverseDivideScalar(c, v, inPlace)
}

func (c *NumericColumn[T]) ReverseModuloScalar(v interface{}, inPlace bool) (Column, error) {
	return ReverseModuloScalar(c, v, inPlace)
}

// Comparison surface; right is a Column or a scalar.

func (c *NumericColumn[T]) ElementwiseEquals(right interface{}) (*BoolColumn, error) {
	return ElementwiseEquals(c, right)
}

func (c *NumericColumn[T]) ElementwiseNotEquals(right interface{}) (*BoolColumn, error) {
	return ElementwiseNotEquals(c, right)
}

func (c *NumericColumn[T]) ElementwiseGreaterThan(right interface{}) (*BoolColumn, error) {
	return ElementwiseGreaterThan(c, right)
}

func (c *NumericColumn[T]) ElementwiseLessThan(right interface{}) (*BoolColumn, error) {
	return ElementwiseLessThan(c, right)
}

func (c *NumericColumn[T]) ElementwiseGreaterThanOrEqual(right interface{}) (*BoolColumn, error) {
	return ElementwiseGreaterThanOrEqual(c, right)
}

func (c *NumericColumn[T]) ElementwiseLessThanOrEqual(right interface{}) (*BoolColumn, error) {
	return ElementwiseLessThanOrEqual(c, right)
}

// Bitwise and shift surface (integer kinds only; the engine rejects
// floating receivers).

func (c *NumericColumn[T]) And(right interface{}, inPlace bool) (Column, error) {
	return And(c, right, inPlace)
}

func (c *NumericColumn[T]) Or(right interface{}, inPlace bool) (Column, error) {
	return Or(c, right, inPlace)
}

func (c *NumericColumn[T]) Xor(right interface{}, inPlace bool) (Column, error) {
	return Xor(c, right, inPlace)
}

func (c *NumericColumn[T]) LeftShift(amount int, inPlace bool) (Column, error) {
	return LeftShift(c, amount, inPlace)
}

func (c *NumericColumn[T]) RightShift(amount int, inPlace bool) (Column, error) {
	return RightShift(c, amount, inPlace)
}
