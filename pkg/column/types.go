package column

// DataType tags the element kind of a column. The tag is immutable for the
// lifetime of a column instance; conversions produce new columns.
type DataType uint8

const (
	// Bool is a bit-packed boolean kind.
	Bool DataType = iota
	// Int8 through Uint64 are the machine integer kinds.
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	// Float32 and Float64 are IEEE floating kinds.
	Float32
	Float64
	// Decimal is an exact decimal kind backed by shopspring/decimal.
	Decimal
	// String is a storage-only kind used by the CSV loader. It has no
	// arithmetic surface.
	String
)

var typeNames = [...]string{
	Bool:    "bool",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
	Decimal: "decimal",
	String:  "string",
}

func (t DataType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// IsNumeric reports whether t participates in arithmetic promotion.
func (t DataType) IsNumeric() bool {
	return t >= Int8 && t <= Decimal
}

// IsInteger reports whether t is a machine integer kind.
func (t DataType) IsInteger() bool {
	return t >= Int8 && t <= Uint64
}

// IsSigned reports whether t is a signed machine integer kind.
func (t DataType) IsSigned() bool {
	return t >= Int8 && t <= Int64
}

// IsUnsigned reports whether t is an unsigned machine integer kind.
func (t DataType) IsUnsigned() bool {
	return t >= Uint8 && t <= Uint64
}

// IsFloating reports whether t is an IEEE floating kind.
func (t DataType) IsFloating() bool {
	return t == Float32 || t == Float64
}

// Integer constrains the machine integer element types.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float constrains the IEEE floating element types.
type Float interface {
	~float32 | ~float64
}

// Number constrains the machine numeric element types. Decimal and Bool
// columns have dedicated kernels.
type Number interface {
	Integer | Float
}

// dataTypeOf maps a Go element type to its tag.
func dataTypeOf[T Number]() DataType {
	switch any(T(0)).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	default:
		return Float64
	}
}
