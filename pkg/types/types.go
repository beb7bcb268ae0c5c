package types

// DType identifies the data type of a column or scalar value.
type DType int

const (
	Int64Type DType = iota
	Float64Type
	BoolType
	StringType
	TimestampType
	CategoricalType
	ListType
	NullType
	UnknownType
)

// String returns a string representation of the type
func (d DType) String() string {
	switch d {
	case Int64Type:
		return "INT64"
	case Float64Type:
		return "FLOAT64"
	case BoolType:
		return "BOOL"
	case StringType:
		return "STRING"
	case TimestampType:
		return "TIMESTAMP"
	case CategoricalType:
		return "CATEGORICAL"
	case ListType:
		return "LIST"
	case NullType:
		return "NULL"
	default:
		return "UNKNOWN"
	}
}

// IsNumeric reports whether the type supports arithmetic aggregation
// (mean, std, quantiles).
func (d DType) IsNumeric() bool {
	return d == Int64Type || d == Float64Type
}

// IsTemporal reports whether the type is time-like. Temporal columns
// support ordering and midpoint averaging but not variance.
func (d DType) IsTemporal() bool {
	return d == TimestampType
}

// IsNested reports whether the type is a composite of other values.
func (d DType) IsNested() bool {
	return d == ListType
}

// IsOrdered reports whether values of the type carry a total order
// usable for min/max. Categorical codes compare by dictionary position,
// not rank, so they are excluded together with nested and null columns.
func (d DType) IsOrdered() bool {
	switch d {
	case CategoricalType, ListType, NullType, UnknownType:
		return false
	default:
		return true
	}
}
