package column

import (
	"github.com/ajitpratap0/tabula/pkg/bitmap"
	"github.com/ajitpratap0/tabula/pkg/errors"
)

// BoolColumn stores booleans bit-packed, 64 per word, with a parallel
// validity bitmap. Comparison kernels produce BoolColumns with no nulls.
type BoolColumn struct {
	name   string
	values *bitmap.Bitmap
	valid  *bitmap.Bitmap
}

// NewBool allocates an empty boolean column.
func NewBool(name string) *BoolColumn {
	return &BoolColumn{name: name, values: bitmap.New(0)}
}

// BoolFromSlice wraps a bool slice as a column with no nulls.
func BoolFromSlice(name string, vals []bool) *BoolColumn {
	c := NewBool(name)
	for _, v := range vals {
		c.Append(v)
	}
	return c
}

// BoolFromPtrs builds a boolean column from pointers, treating nil as null.
func BoolFromPtrs(name string, vals []*bool) *BoolColumn {
	c := NewBool(name)
	for _, v := range vals {
		if v == nil {
			c.AppendNull()
		} else {
			c.Append(*v)
		}
	}
	return c
}

func (c *BoolColumn) Name() string        { return c.name }
func (c *BoolColumn) SetName(name string) { c.name = name }
func (c *BoolColumn) DataType() DataType  { return Bool }
func (c *BoolColumn) Len() int            { return c.values.Len() }

func (c *BoolColumn) NullCount() int {
	if c.valid == nil {
		return 0
	}
	return c.Len() - c.valid.Count()
}

func (c *BoolColumn) IsNull(i int) bool {
	return c.valid != nil && !c.valid.Get(i)
}

// Get returns the element at i and whether it is valid.
func (c *BoolColumn) Get(i int) (bool, bool) {
	if c.IsNull(i) {
		return false, false
	}
	return c.values.Get(i), true
}

func (c *BoolColumn) Value(i int) interface{} {
	if c.IsNull(i) {
		return nil
	}
	return c.values.Get(i)
}

// Append adds a valid element.
func (c *BoolColumn) Append(v bool) {
	c.values.Append(v)
	if c.valid != nil {
		c.valid.Append(true)
	}
}

// AppendNull adds a null slot.
func (c *BoolColumn) AppendNull() {
	if c.valid == nil {
		c.valid = bitmap.NewAllSet(c.Len())
	}
	c.values.Append(false)
	c.valid.Append(false)
}

func (c *BoolColumn) AppendValue(v interface{}) error {
	if v == nil {
		c.AppendNull()
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		return errors.Newf(errors.KindConversion, "cannot append %T to bool column %q", v, c.name)
	}
	c.Append(b)
	return nil
}

// Set overwrites the element at i and marks it valid.
func (c *BoolColumn) Set(i int, v bool) {
	c.values.Set(i, v)
	if c.valid != nil {
		c.valid.Set(i, true)
	}
}

func (c *BoolColumn) clone() *BoolColumn {
	cp := &BoolColumn{name: c.name, values: c.values.Clone()}
	if c.valid != nil {
		cp.valid = c.valid.Clone()
	}
	return cp
}

func (c *BoolColumn) Clone() Column { return c.clone() }

// CloneAsType only supports the identity conversion: the host language has
// no implicit bool/numeric conversion and neither do we.
func (c *BoolColumn) CloneAsType(t DataType) (Column, error) {
	if t != Bool {
		return nil, errors.Newf(errors.KindUnsupported, "cannot convert bool column %q to %s", c.name, t)
	}
	return c.clone(), nil
}

func (c *BoolColumn) CloneAsTypeChecked(t DataType) (Column, error) {
	return c.CloneAsType(t)
}

// Logical surface; right is a *BoolColumn or a bool scalar.

func (c *BoolColumn) And(right interface{}, inPlace bool) (Column, error) {
	return And(c, right, inPlace)
}

func (c *BoolColumn) Or(right interface{}, inPlace bool) (Column, error) {
	return Or(c, right, inPlace)
}

func (c *BoolColumn) Xor(right interface{}, inPlace bool) (Column, error) {
	return Xor(c, right, inPlace)
}

func (c *BoolColumn) ElementwiseEquals(right interface{}) (*BoolColumn, error) {
	return ElementwiseEquals(c, right)
}

func (c *BoolColumn) ElementwiseNotEquals(right interface{}) (*BoolColumn, error) {
	return ElementwiseNotEquals(c, right)
}
