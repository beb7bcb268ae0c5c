package types

// Value is a single typed scalar. A nil Value denotes null; concrete
// implementations are always non-null.
type Value interface {
	// Compare applies the given predicate between this value and other.
	Compare(op Predicate, other Value) (bool, error)

	// DType returns the data type of the value.
	DType() DType

	// String returns the value's natural display representation, the
	// same text used when the value is printed on its own.
	String() string
}

// Less reports whether a orders before b. It is a convenience wrapper
// around Compare with the LessThan predicate.
func Less(a, b Value) (bool, error) {
	return a.Compare(LessThan, b)
}

func compareOrdered[T int64 | float64 | string](op Predicate, a, b T) (bool, error) {
	switch op {
	case Equals:
		return a == b, nil
	case LessThan:
		return a < b, nil
	case GreaterThan:
		return a > b, nil
	case LessThanOrEqual:
		return a <= b, nil
	case GreaterThanOrEqual:
		return a >= b, nil
	case NotEqual:
		return a != b, nil
	default:
		return false, errUnsupportedPredicate(op)
	}
}
