package types

import "strconv"

// BoolValue represents a boolean scalar. Ordering treats false < true,
// matching the 0/1 numeric widening used for averaging.
type BoolValue struct {
	Value bool
}

func NewBoolValue(value bool) *BoolValue {
	return &BoolValue{Value: value}
}

func (b *BoolValue) Compare(op Predicate, other Value) (bool, error) {
	o, ok := other.(*BoolValue)
	if !ok {
		return false, errIncomparable(b, other)
	}
	return compareOrdered(op, boolRank(b.Value), boolRank(o.Value))
}

func boolRank(v bool) int64 {
	if v {
		return 1
	}
	return 0
}

func (b *BoolValue) DType() DType {
	return BoolType
}

func (b *BoolValue) String() string {
	return strconv.FormatBool(b.Value)
}
