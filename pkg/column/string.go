package column

import (
	"github.com/ajitpratap0/tabula/pkg/bitmap"
	"github.com/ajitpratap0/tabula/pkg/errors"
)

// StringColumn is storage-only: the CSV loader streams unparseable fields
// here. It carries no arithmetic or comparison surface.
type StringColumn struct {
	name   string
	values []string
	valid  *bitmap.Bitmap
}

// NewString allocates an empty string column.
func NewString(name string, capacity int) *StringColumn {
	return &StringColumn{
		name:   name,
		values: make([]string, 0, capacity),
	}
}

// StringFromSlice wraps a string slice as a column with no nulls.
func StringFromSlice(name string, vals []string) *StringColumn {
	c := NewString(name, len(vals))
	c.values = append(c.values, vals...)
	return c
}

func (c *StringColumn) Name() string        { return c.name }
func (c *StringColumn) SetName(name string) { c.name = name }
func (c *StringColumn) DataType() DataType  { return String }
func (c *StringColumn) Len() int            { return len(c.values) }

func (c *StringColumn) NullCount() int {
	if c.valid == nil {
		return 0
	}
	return c.Len() - c.valid.Count()
}

func (c *StringColumn) IsNull(i int) bool {
	return c.valid != nil && !c.valid.Get(i)
}

// Get returns the element at i and whether it is valid.
func (c *StringColumn) Get(i int) (string, bool) {
	if c.IsNull(i) {
		return "", false
	}
	return c.values[i], true
}

func (c *StringColumn) Value(i int) interface{} {
	if c.IsNull(i) {
		return nil
	}
	return c.values[i]
}

// Append adds a valid element.
func (c *StringColumn) Append(v string) {
	c.values = append(c.values, v)
	if c.valid != nil {
		c.valid.Append(true)
	}
}

// AppendNull adds a null slot.
func (c *StringColumn) AppendNull() {
	if c.valid == nil {
		c.valid = bitmap.NewAllSet(len(c.values))
	}
	c.values = append(c.values, "")
	c.valid.Append(false)
}

func (c *StringColumn) AppendValue(v interface{}) error {
	if v == nil {
		c.AppendNull()
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return errors.Newf(errors.KindConversion, "cannot append %T to string column %q", v, c.name)
	}
	c.Append(s)
	return nil
}

func (c *StringColumn) clone() *StringColumn {
	cp := &StringColumn{
		name:   c.name,
		values: make([]string, len(c.values)),
	}
	copy(cp.values, c.values)
	if c.valid != nil {
		cp.valid = c.valid.Clone()
	}
	return cp
}

func (c *StringColumn) Clone() Column { return c.clone() }

func (c *StringColumn) CloneAsType(t DataType) (Column, error) {
	if t != String {
		return nil, errors.Newf(errors.KindUnsupported, "cannot convert string column %q to %s", c.name, t)
	}
	return c.clone(), nil
}

func (c *StringColumn) CloneAsTypeChecked(t DataType) (Column, error) {
	return c.CloneAsType(t)
}
