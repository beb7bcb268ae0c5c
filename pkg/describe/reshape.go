package describe

import (
	"fmt"
	"strconv"

	"statframe/pkg/frame"
	"statframe/pkg/types"
)

// Fixed positions of the non-percentile statistics within each
// column's request block.
const (
	metricCount = iota
	metricNullCount
	metricMean
	metricStd
	metricMin
	metricFirstPercentile
)

// reshape turns the single-row wide result into the long-form output
// table: one row per metric label, one string column per schema column,
// with the "statistic" label column first.
func reshape(wide *frame.Frame, schema *frame.Schema, labels []string, percentiles []float64) (*frame.Frame, error) {
	columns := make([]*frame.Series, 0, schema.Len()+1)

	labelCells := make([]types.Value, len(labels))
	for i, l := range labels {
		labelCells[i] = types.NewStringValue(l)
	}
	statCol, err := frame.NewSeries("statistic", types.StringType, labelCells)
	if err != nil {
		return nil, fmt.Errorf("describe: building statistic column: %w", err)
	}
	columns = append(columns, statCol)

	nMetrics := len(labels)
	for ci := 0; ci < schema.Len(); ci++ {
		name := schema.Name(ci)
		dtype := schema.DType(ci)

		cells := make([]types.Value, nMetrics)
		for mi := 0; mi < nMetrics; mi++ {
			key := keyAt(mi, nMetrics, name, percentiles)
			cells[mi] = types.NewStringValue(formatCell(scalarAt(wide, key), dtype, mi, nMetrics))
		}

		col, err := frame.NewSeries(name, types.StringType, cells)
		if err != nil {
			return nil, fmt.Errorf("describe: building column %q: %w", name, err)
		}
		columns = append(columns, col)
	}

	out, err := frame.NewFrame(columns...)
	if err != nil {
		// Unreachable when the planner/reshaper key contract holds.
		return nil, fmt.Errorf("describe: assembling output table: %w", err)
	}
	return out, nil
}

// keyAt reconstructs the synthetic key for metric position mi of the
// given column, mirroring the order the planner emitted requests in.
func keyAt(mi, nMetrics int, column string, percentiles []float64) string {
	switch mi {
	case metricCount:
		return statKey("count", column)
	case metricNullCount:
		return statKey("null_count", column)
	case metricMean:
		return statKey("mean", column)
	case metricStd:
		return statKey("std", column)
	case metricMin:
		return statKey("min", column)
	}
	if mi < nMetrics-1 {
		pi := mi - metricFirstPercentile
		return percentileKey(percentiles[pi], pi, column)
	}
	return statKey("max", column)
}

// scalarAt fetches the single scalar stored under key in the wide
// result, or nil when the key is absent or holds a null.
func scalarAt(wide *frame.Frame, key string) types.Value {
	col, ok := wide.Column(key)
	if !ok || col.Len() == 0 {
		return nil
	}
	return col.Value(0)
}

// numericResult reports whether mean/std results for the column type
// are rendered as fixed-precision decimals.
func numericResult(dt types.DType) bool {
	return dt.IsNumeric() || dt.IsNested() || dt == types.NullType || dt == types.BoolType
}

// formatCell renders one scalar for the output table.
func formatCell(v types.Value, dt types.DType, mi, nMetrics int) string {
	if v == nil {
		return "null"
	}

	switch {
	case mi == metricCount || mi == metricNullCount:
		if iv, ok := v.(*types.Int64Value); ok {
			return strconv.FormatInt(iv.Value, 10)
		}
		return v.String()

	case (mi == metricMean || mi == metricStd) && numericResult(dt):
		if fv, ok := types.AsFloat64(v); ok {
			return strconv.FormatFloat(fv, 'f', 6, 64)
		}
		return v.String()

	case dt == types.BoolType && (mi == metricMin || mi == nMetrics-1):
		// The boolean min/max rows always read false/true rather than
		// going through the generic scalar display.
		if mi == metricMin {
			return "false"
		}
		return "true"

	default:
		return v.String()
	}
}
