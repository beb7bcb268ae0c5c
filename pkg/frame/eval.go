package frame

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"statframe/pkg/expr"
	"statframe/pkg/types"
)

// Select evaluates a batch of aggregation expressions against the frame
// in one logical pass and returns a single-row frame with one column
// per expression, named by the expression's output name.
func (f *Frame) Select(exprs ...expr.Expr) (*Frame, error) {
	out := make([]*Series, 0, len(exprs))
	for _, e := range exprs {
		v, dtype, err := f.evalScalar(e)
		if err != nil {
			return nil, err
		}
		out = append(out, &Series{
			name:   e.OutputName(),
			dtype:  dtype,
			values: []types.Value{v},
		})
	}
	return NewFrame(out...)
}

// evalScalar reduces one expression to a scalar cell and its result
// type. A nil value with a non-null dtype is a typed null.
func (f *Frame) evalScalar(e expr.Expr) (types.Value, types.DType, error) {
	switch node := e.(type) {
	case *expr.AliasExpr:
		return f.evalScalar(node.Inner)
	case *expr.AggExpr:
		return f.evalAgg(node)
	case *expr.CastExpr:
		v, _, err := f.evalScalar(node.Inner)
		if err != nil {
			return nil, types.NullType, err
		}
		if v == nil {
			return nil, node.TargetType, nil
		}
		fv, ok := types.AsFloat64(v)
		if !ok || node.TargetType != types.Float64Type {
			return nil, types.NullType, fmt.Errorf("cannot cast %s scalar to %s", v.DType(), node.TargetType)
		}
		return types.NewFloat64Value(fv), types.Float64Type, nil
	case *expr.LitExpr:
		if node.Value == nil {
			return nil, types.NullType, nil
		}
		return node.Value, node.Value.DType(), nil
	default:
		return nil, types.NullType, fmt.Errorf("unsupported expression: %s", e)
	}
}

// resolveInput walks an aggregation's input down to a concrete series,
// materializing casts on the way.
func (f *Frame) resolveInput(e expr.Expr) (*Series, error) {
	switch node := e.(type) {
	case *expr.ColExpr:
		s, ok := f.Column(node.Name)
		if !ok {
			return nil, fmt.Errorf("unknown column: %s", node.Name)
		}
		return s, nil
	case *expr.CastExpr:
		s, err := f.resolveInput(node.Inner)
		if err != nil {
			return nil, err
		}
		return s.cast(node.TargetType)
	default:
		return nil, fmt.Errorf("aggregation input must be a column reference, got %s", e)
	}
}

func (f *Frame) evalAgg(agg *expr.AggExpr) (types.Value, types.DType, error) {
	s, err := f.resolveInput(agg.Input)
	if err != nil {
		return nil, types.NullType, err
	}

	switch agg.Kind {
	case expr.Count:
		return types.NewInt64Value(s.count()), types.Int64Type, nil

	case expr.NullCount:
		return types.NewInt64Value(s.nullCount()), types.Int64Type, nil

	case expr.Mean:
		return s.mean()

	case expr.Std:
		xs, err := s.floats()
		if err != nil {
			return nil, types.NullType, err
		}
		// The sample estimator divides by n-ddof; below that many
		// observations the statistic is undefined.
		if len(xs) <= agg.Ddof {
			return nil, types.Float64Type, nil
		}
		return types.NewFloat64Value(stat.StdDev(xs, nil)), types.Float64Type, nil

	case expr.Min, expr.Max:
		v, err := s.extreme(agg.Kind == expr.Max)
		if err != nil {
			return nil, types.NullType, err
		}
		return v, s.dtype, nil

	case expr.Quantile:
		if agg.Fraction <= 0 || agg.Fraction > 1 {
			return nil, types.NullType, fmt.Errorf("quantile fraction %v out of range (0, 1]", agg.Fraction)
		}
		xs, err := s.sortedFloats()
		if err != nil {
			return nil, types.NullType, err
		}
		if len(xs) == 0 {
			return nil, types.Float64Type, nil
		}
		return types.NewFloat64Value(interpolate(xs, agg.Fraction)), types.Float64Type, nil

	default:
		return nil, types.NullType, fmt.Errorf("unsupported aggregation: %s", agg.Kind)
	}
}

// mean averages the non-null cells. Numeric and boolean columns reduce
// to a float; temporal columns reduce to the epoch midpoint.
func (s *Series) mean() (types.Value, types.DType, error) {
	if s.dtype.IsTemporal() {
		v := s.temporalMean()
		return v, types.TimestampType, nil
	}
	xs, err := s.floats()
	if err != nil {
		return nil, types.NullType, err
	}
	if len(xs) == 0 {
		return nil, types.Float64Type, nil
	}
	return types.NewFloat64Value(stat.Mean(xs, nil)), types.Float64Type, nil
}

func (s *Series) temporalMean() types.Value {
	var sum float64
	var n int
	for _, v := range s.values {
		t, ok := v.(*types.TimeValue)
		if !ok {
			continue
		}
		sum += float64(t.Value.UnixMicro())
		n++
	}
	if n == 0 {
		return nil
	}
	return types.NewTimeValue(microsToTime(int64(sum / float64(n))))
}

// interpolate returns the rank-based value at fraction f of the sorted
// sample, linearly interpolated between the two adjacent ranks.
func interpolate(sorted []float64, f float64) float64 {
	h := float64(len(sorted)-1) * f
	lo := int(h)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
