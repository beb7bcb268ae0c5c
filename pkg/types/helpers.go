package types

import "fmt"

func errUnsupportedPredicate(op Predicate) error {
	return fmt.Errorf("unsupported predicate: %v", op)
}

func errIncomparable(a, b Value) error {
	return fmt.Errorf("cannot compare %s value with %s value", a.DType(), b.DType())
}

// AsFloat64 extracts a float64 from a numeric or boolean value.
// Booleans widen to 0/1. The second return is false for every other
// value kind.
func AsFloat64(v Value) (float64, bool) {
	switch f := v.(type) {
	case *Float64Value:
		return f.Value, true
	case *Int64Value:
		return float64(f.Value), true
	case *BoolValue:
		if f.Value {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
