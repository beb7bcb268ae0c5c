package types

// StringValue represents a text scalar. Comparisons are lexicographic
// on the raw bytes.
type StringValue struct {
	Value string
}

func NewStringValue(value string) *StringValue {
	return &StringValue{Value: value}
}

func (s *StringValue) Compare(op Predicate, other Value) (bool, error) {
	o, ok := other.(*StringValue)
	if !ok {
		return false, errIncomparable(s, other)
	}
	return compareOrdered(op, s.Value, o.Value)
}

func (s *StringValue) DType() DType {
	return StringType
}

func (s *StringValue) String() string {
	return s.Value
}
