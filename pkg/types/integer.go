package types

import "strconv"

// Int64Value represents a 64-bit signed integer scalar.
type Int64Value struct {
	Value int64
}

func NewInt64Value(value int64) *Int64Value {
	return &Int64Value{Value: value}
}

// Compare performs a comparison operation between this value and another
// using the specified predicate. Integers compare numerically against
// both Int64Value and Float64Value.
func (i *Int64Value) Compare(op Predicate, other Value) (bool, error) {
	switch o := other.(type) {
	case *Int64Value:
		return compareOrdered(op, i.Value, o.Value)
	case *Float64Value:
		return compareOrdered(op, float64(i.Value), o.Value)
	default:
		return false, errIncomparable(i, other)
	}
}

func (i *Int64Value) DType() DType {
	return Int64Type
}

func (i *Int64Value) String() string {
	return strconv.FormatInt(i.Value, 10)
}
