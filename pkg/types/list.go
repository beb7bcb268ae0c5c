package types

import "strings"

// ListValue represents a nested scalar holding an ordered sequence of
// element values. Lists have no total order and do not support
// comparison predicates.
type ListValue struct {
	Elems []Value
}

func NewListValue(elems []Value) *ListValue {
	return &ListValue{Elems: elems}
}

func (l *ListValue) Compare(op Predicate, other Value) (bool, error) {
	return false, errIncomparable(l, other)
}

func (l *ListValue) DType() DType {
	return ListType
}

func (l *ListValue) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range l.Elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		if e == nil {
			sb.WriteString("null")
		} else {
			sb.WriteString(e.String())
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
