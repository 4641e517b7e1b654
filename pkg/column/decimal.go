package column

import (
	"github.com/shopspring/decimal"

	"github.com/ajitpratap0/tabula/pkg/bitmap"
	"github.com/ajitpratap0/tabula/pkg/errors"
)

// DecimalColumn stores exact decimal elements. Decimal is the widest kind
// in the promotion table: any operand paired with a decimal is converted to
// decimal first.
type DecimalColumn struct {
	name   string
	values []decimal.Decimal
	valid  *bitmap.Bitmap
}

// NewDecimal allocates an empty decimal column.
func NewDecimal(name string, capacity int) *DecimalColumn {
	return &DecimalColumn{
		name:   name,
		values: make([]decimal.Decimal, 0, capacity),
	}
}

// DecimalFromStrings parses decimal literals into a column with no nulls.
func DecimalFromStrings(name string, vals []string) (*DecimalColumn, error) {
	c := NewDecimal(name, len(vals))
	for _, s := range vals {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, errors.Wrap(err, errors.KindParse, "invalid decimal literal")
		}
		c.Append(d)
	}
	return c, nil
}

// DecimalFromSlice wraps decimal values as a column with no nulls.
func DecimalFromSlice(name string, vals []decimal.Decimal) *DecimalColumn {
	c := NewDecimal(name, len(vals))
	c.values = append(c.values, vals...)
	return c
}

func (c *DecimalColumn) Name() string        { return c.name }
func (c *DecimalColumn) SetName(name string) { c.name = name }
func (c *DecimalColumn) DataType() DataType  { return Decimal }
func (c *DecimalColumn) Len() int            { return len(c.values) }

func (c *DecimalColumn) NullCount() int {
	if c.valid == nil {
		return 0
	}
	return c.Len() - c.valid.Count()
}

func (c *DecimalColumn) IsNull(i int) bool {
	return c.valid != nil && !c.valid.Get(i)
}

// Get returns the element at i and whether it is valid.
func (c *DecimalColumn) Get(i int) (decimal.Decimal, bool) {
	if c.IsNull(i) {
		return decimal.Decimal{}, false
	}
	return c.values[i], true
}

func (c *DecimalColumn) Value(i int) interface{} {
	if c.IsNull(i) {
		return nil
	}
	return c.values[i]
}

// Values exposes the backing buffer. Callers must not resize it.
func (c *DecimalColumn) Values() []decimal.Decimal { return c.values }

// Append adds a valid element.
func (c *DecimalColumn) Append(v decimal.Decimal) {
	c.values = append(c.values, v)
	if c.valid != nil {
		c.valid.Append(true)
	}
}

// AppendNull adds a null slot.
func (c *DecimalColumn) AppendNull() {
	if c.valid == nil {
		c.valid = bitmap.NewAllSet(len(c.values))
	}
	c.values = append(c.values, decimal.Decimal{})
	c.valid.Append(false)
}

func (c *DecimalColumn) AppendValue(v interface{}) error {
	if v == nil {
		c.AppendNull()
		return nil
	}
	s, err := normalizeScalar(v)
	if err != nil {
		return err
	}
	if s.class == scalarBool {
		return errors.Newf(errors.KindConversion, "cannot append bool to decimal column %q", c.name)
	}
	c.Append(s.asDecimal())
	return nil
}

// Set overwrites the element at i and marks it valid.
func (c *DecimalColumn) Set(i int, v decimal.Decimal) {
	c.values[i] = v
	if c.valid != nil {
		c.valid.Set(i, true)
	}
}

func (c *DecimalColumn) clone() *DecimalColumn {
	cp := &DecimalColumn{
		name:   c.name,
		values: make([]decimal.Decimal, len(c.values)),
	}
	copy(cp.values, c.values)
	if c.valid != nil {
		cp.valid = c.valid.Clone()
	}
	return cp
}

func (c *DecimalColumn) Clone() Column { return c.clone() }

func (c *DecimalColumn) CloneAsType(t DataType) (Column, error) {
	return convertDecimal(c, t, false)
}

func (c *DecimalColumn) CloneAsTypeChecked(t DataType) (Column, error) {
	return convertDecimal(c, t, true)
}

// Arithmetic and comparison surface.

func (c *DecimalColumn) Add(other Column, inPlace bool) (Column, error) {
	return Add(c, other, inPlace)
}

func (c *DecimalColumn) Subtract(other Column, inPlace bool) (Column, error) {
	return Subtract(c, other, inPlace)
}

func (c *DecimalColumn) Multiply(other Column, inPlace bool) (Column, error) {
	return Multiply(c, other, inPlace)
}

func (c *DecimalColumn) Divide(other Column, inPlace bool) (Column, error) {
	return Divide(c, other, inPlace)
}

func (c *DecimalColumn) Modulo(other Column, inPlace bool) (Column, error) {
	return Modulo(c, other, inPlace)
}

func (c *DecimalColumn) AddScalar(v interface{}, inPlace bool) (Column, error) {
	return AddScalar(c, v, inPlace)
}

func (c *DecimalColumn) SubtractScalar(v interface{}, inPlace bool) (Column, error) {
	return SubtractScalar(c, v, inPlace)
}

func (c *DecimalColumn) MultiplyScalar(v interface{}, inPlace bool) (Column, error) {
	return MultiplyScalar(c, v, inPlace)
}

func (c *DecimalColumn) DivideScalar(v interface{}, inPlace bool) (Column, error) {
	return DivideScalar(c, v, inPlace)
}

func (c *DecimalColumn) ModuloScalar(v interface{}, inPlace bool) (Column, error) {
	return ModuloScalar(c, v, inPlace)
}

func (c *DecimalColumn) ReverseAddScalar(v interface{}, inPlace bool) (Column, error) {
	return ReverseAddScalar(c, v, inPlace)
}

func (c *DecimalColumn) ReverseSubtractScalar(v interface{}, inPlace bool) (Column, error) {
	return ReverseSubtractScalar(c, v, inPlace)
}

func (c *DecimalColumn) ReverseMultiplyScalar(v interface{}, inPlace bool) (Column, error) {
	return ReverseMultiplyScalar(c, v, inPlace)
}

func (c *DecimalColumn) ReverseDivideScalar(v interface{}, inPlace bool) (Column, error) {
	return ReverseDivideScalar(c, v, inPlace)
}

func (c *DecimalColumn) ReverseModuloScalar(v interface{}, inPlace bool) (Column, error) {
	return ReverseModuloScalar(c, v, inPlace)
}

func (c *DecimalColumn) ElementwiseEquals(right interface{}) (*BoolColumn, error) {
	return ElementwiseEquals(c, right)
}

func (c *DecimalColumn) ElementwiseNotEquals(right interface{}) (*BoolColumn, error) {
	return ElementwiseNotEquals(c, right)
}

func (c *DecimalColumn) ElementwiseGreaterThan(right interface{}) (*BoolColumn, error) {
	return ElementwiseGreaterThan(c, right)
}

func (c *DecimalColumn) ElementwiseLessThan(right interface{}) (*BoolColumn, error) {
	return ElementwiseLessThan(c, right)
}

func (c *DecimalColumn) ElementwiseGreaterThanOrEqual(right interface{}) (*BoolColumn, error) {
	return ElementwiseGreaterThanOrEqual(c, right)
}

func (c *DecimalColumn) ElementwiseLessThanOrEqual(right interface{}) (*BoolColumn, error) {
	return ElementwiseLessThanOrEqual(c, right)
}
