package types

import "time"

// timestampDisplay is the layout used for the natural display of
// temporal values.
const timestampDisplay = "2006-01-02 15:04:05"

// TimeValue represents a temporal scalar with microsecond resolution.
type TimeValue struct {
	Value time.Time
}

func NewTimeValue(value time.Time) *TimeValue {
	return &TimeValue{Value: value}
}

func (t *TimeValue) Compare(op Predicate, other Value) (bool, error) {
	o, ok := other.(*TimeValue)
	if !ok {
		return false, errIncomparable(t, other)
	}
	return compareOrdered(op, t.Value.UnixMicro(), o.Value.UnixMicro())
}

func (t *TimeValue) DType() DType {
	return TimestampType
}

func (t *TimeValue) String() string {
	return t.Value.UTC().Format(timestampDisplay)
}
