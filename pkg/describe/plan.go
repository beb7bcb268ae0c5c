package describe

import (
	"statframe/pkg/expr"
	"statframe/pkg/frame"
	"statframe/pkg/types"
)

// typeCategory buckets column types by the statistics they support.
type typeCategory int

const (
	catNumeric typeCategory = iota
	catTemporal
	catBoolean
	catNested // nested/composite and categorical-like types
	catNullish
	catOther // string/text and anything else that still orders
)

func categorize(dt types.DType) typeCategory {
	switch {
	case dt.IsNumeric():
		return catNumeric
	case dt.IsTemporal():
		return catTemporal
	case dt == types.BoolType:
		return catBoolean
	case dt.IsNested() || dt == types.CategoricalType:
		return catNested
	case dt == types.NullType || dt == types.UnknownType:
		return catNullish
	default:
		return catOther
	}
}

// validStats maps each type category to the statistics that are
// semantically valid for it. Count and null count always apply and are
// not listed. Changing a statistic's applicability is a one-line edit
// here.
var validStats = map[typeCategory]map[expr.AggKind]bool{
	catNumeric:  {expr.Mean: true, expr.Std: true, expr.Min: true, expr.Max: true, expr.Quantile: true},
	catTemporal: {expr.Mean: true, expr.Min: true, expr.Max: true},
	catBoolean:  {expr.Mean: true, expr.Min: true, expr.Max: true},
	catNested:   {},
	catNullish:  {},
	catOther:    {expr.Min: true, expr.Max: true},
}

func applies(cat typeCategory, kind expr.AggKind) bool {
	if kind == expr.Count || kind == expr.NullCount {
		return true
	}
	return validStats[cat][kind]
}

// metricLabels builds the invariant ordered row labels: count,
// null_count, mean, std, min, one label per percentile, max.
func metricLabels(percentiles []float64) []string {
	labels := make([]string, 0, len(percentiles)+6)
	labels = append(labels, "count", "null_count", "mean", "std", "min")
	for _, p := range percentiles {
		labels = append(labels, percentLabel(p))
	}
	labels = append(labels, "max")
	return labels
}

// nullPlaceholder is the typed null emitted for a statistic that does
// not apply to a column.
func nullPlaceholder(key string) expr.Expr {
	return expr.Lit(nil).Cast(types.Float64Type).Alias(key)
}

// plan walks the schema once and, for every column, appends its
// aggregation requests in the fixed order count, null_count, mean, std,
// min, percentiles, max. The reshaper reconstructs each request's key
// from this ordering alone.
func plan(schema *frame.Schema, percentiles []float64) []expr.Expr {
	requests := make([]expr.Expr, 0, schema.Len()*(len(percentiles)+6))

	for i := 0; i < schema.Len(); i++ {
		name := schema.Name(i)
		cat := categorize(schema.DType(i))
		col := expr.Col(name)

		requests = append(requests,
			col.Count().Alias(statKey("count", name)),
			col.NullCount().Alias(statKey("null_count", name)),
		)

		if applies(cat, expr.Mean) {
			mean := col.Mean()
			if cat == catBoolean {
				// Booleans average as a 0/1 numeric.
				mean = col.Cast(types.Float64Type).Mean()
			}
			requests = append(requests, mean.Alias(statKey("mean", name)))
		} else {
			requests = append(requests, nullPlaceholder(statKey("mean", name)))
		}

		if applies(cat, expr.Std) {
			requests = append(requests, col.Std(1).Alias(statKey("std", name)))
		} else {
			requests = append(requests, nullPlaceholder(statKey("std", name)))
		}

		if applies(cat, expr.Min) {
			requests = append(requests, col.Min().Alias(statKey("min", name)))
		} else {
			requests = append(requests, nullPlaceholder(statKey("min", name)))
		}

		for pi, p := range percentiles {
			key := percentileKey(p, pi, name)
			if applies(cat, expr.Quantile) {
				requests = append(requests, col.Quantile(p).Alias(key))
			} else {
				requests = append(requests, nullPlaceholder(key))
			}
		}

		if applies(cat, expr.Max) {
			requests = append(requests, col.Max().Alias(statKey("max", name)))
		} else {
			requests = append(requests, nullPlaceholder(statKey("max", name)))
		}
	}

	return requests
}
