package frame

import (
	"fmt"
	"sort"
	"time"

	"statframe/pkg/types"
)

// Series is a named, typed, nullable column. Cells are typed scalar
// values; a nil cell is null.
type Series struct {
	name   string
	dtype  types.DType
	values []types.Value
}

// NewSeries creates a series from explicit cell values. Every non-nil
// cell must match the series dtype, except that categorical cells are
// string values.
func NewSeries(name string, dtype types.DType, values []types.Value) (*Series, error) {
	cellType := dtype
	if dtype == types.CategoricalType {
		cellType = types.StringType
	}
	for i, v := range values {
		if v != nil && v.DType() != cellType {
			return nil, fmt.Errorf("series %q: cell %d has type %s, want %s", name, i, v.DType(), cellType)
		}
	}
	return &Series{name: name, dtype: dtype, values: append([]types.Value{}, values...)}, nil
}

// Convenience constructors for fully populated columns.

func Int64s(name string, vals []int64) *Series {
	values := make([]types.Value, len(vals))
	for i, v := range vals {
		values[i] = types.NewInt64Value(v)
	}
	return &Series{name: name, dtype: types.Int64Type, values: values}
}

func Float64s(name string, vals []float64) *Series {
	values := make([]types.Value, len(vals))
	for i, v := range vals {
		values[i] = types.NewFloat64Value(v)
	}
	return &Series{name: name, dtype: types.Float64Type, values: values}
}

func Bools(name string, vals []bool) *Series {
	values := make([]types.Value, len(vals))
	for i, v := range vals {
		values[i] = types.NewBoolValue(v)
	}
	return &Series{name: name, dtype: types.BoolType, values: values}
}

func Strings(name string, vals []string) *Series {
	values := make([]types.Value, len(vals))
	for i, v := range vals {
		values[i] = types.NewStringValue(v)
	}
	return &Series{name: name, dtype: types.StringType, values: values}
}

func Times(name string, vals []time.Time) *Series {
	values := make([]types.Value, len(vals))
	for i, v := range vals {
		values[i] = types.NewTimeValue(v)
	}
	return &Series{name: name, dtype: types.TimestampType, values: values}
}

// Name returns the series name.
func (s *Series) Name() string { return s.name }

// DType returns the series data type.
func (s *Series) DType() types.DType { return s.dtype }

// Len returns the number of cells, nulls included.
func (s *Series) Len() int { return len(s.values) }

// Value returns the ith cell; nil means null.
func (s *Series) Value(i int) types.Value { return s.values[i] }

// count returns the number of non-null cells.
func (s *Series) count() int64 {
	var n int64
	for _, v := range s.values {
		if v != nil {
			n++
		}
	}
	return n
}

// nullCount returns the number of null cells.
func (s *Series) nullCount() int64 {
	return int64(len(s.values)) - s.count()
}

// floats extracts the non-null cells as float64s. Integer and boolean
// cells widen; non-numeric cells report an error.
func (s *Series) floats() ([]float64, error) {
	out := make([]float64, 0, len(s.values))
	for i, v := range s.values {
		if v == nil {
			continue
		}
		f, ok := types.AsFloat64(v)
		if !ok {
			return nil, fmt.Errorf("series %q: cell %d (%s) is not numeric", s.name, i, v.DType())
		}
		out = append(out, f)
	}
	return out, nil
}

// sortedFloats returns the non-null cells widened to float64 and sorted
// ascending, for rank-based aggregation.
func (s *Series) sortedFloats() ([]float64, error) {
	xs, err := s.floats()
	if err != nil {
		return nil, err
	}
	sort.Float64s(xs)
	return xs, nil
}

// extreme returns the minimum (or maximum) non-null cell under the
// value ordering, or nil when every cell is null.
func (s *Series) extreme(max bool) (types.Value, error) {
	var best types.Value
	for _, v := range s.values {
		if v == nil {
			continue
		}
		if best == nil {
			best = v
			continue
		}
		less, err := types.Less(v, best)
		if err != nil {
			return nil, err
		}
		if less != max {
			best = v
		}
	}
	return best, nil
}

func microsToTime(us int64) time.Time {
	return time.UnixMicro(us).UTC()
}

// cast returns a copy of the series converted to the target type.
// Only widening to float64 is supported; that is the single conversion
// aggregation planning needs.
func (s *Series) cast(target types.DType) (*Series, error) {
	if target != types.Float64Type {
		return nil, fmt.Errorf("series %q: unsupported cast %s -> %s", s.name, s.dtype, target)
	}
	values := make([]types.Value, len(s.values))
	for i, v := range s.values {
		if v == nil {
			continue
		}
		f, ok := types.AsFloat64(v)
		if !ok {
			return nil, fmt.Errorf("series %q: cannot cast %s to %s", s.name, v.DType(), target)
		}
		values[i] = types.NewFloat64Value(f)
	}
	return &Series{name: s.name, dtype: types.Float64Type, values: values}, nil
}
