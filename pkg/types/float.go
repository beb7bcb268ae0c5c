package types

import "strconv"

// Float64Value represents a 64-bit floating point scalar.
type Float64Value struct {
	Value float64
}

func NewFloat64Value(value float64) *Float64Value {
	return &Float64Value{Value: value}
}

func (f *Float64Value) Compare(op Predicate, other Value) (bool, error) {
	switch o := other.(type) {
	case *Float64Value:
		return compareOrdered(op, f.Value, o.Value)
	case *Int64Value:
		return compareOrdered(op, f.Value, float64(o.Value))
	default:
		return false, errIncomparable(f, other)
	}
}

func (f *Float64Value) DType() DType {
	return Float64Type
}

// String returns the shortest decimal representation of the float.
func (f *Float64Value) String() string {
	return strconv.FormatFloat(f.Value, 'f', -1, 64)
}
