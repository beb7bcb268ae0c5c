package describe

import (
	"statframe/pkg/expr"
	"statframe/pkg/frame"
	"statframe/pkg/logging"
)

// defaultPercentiles is used when the caller passes a nil percentile
// list. An empty non-nil list is honored as "no percentile rows".
var defaultPercentiles = []float64{0.25, 0.50, 0.75}

// Source is the narrow engine interface the core consumes: schema
// introspection without materializing rows, and one batched execution
// of aggregation expressions returning a single-row wide result.
// *frame.Frame satisfies it.
type Source interface {
	Schema() *frame.Schema
	Select(exprs ...expr.Expr) (*frame.Frame, error)
}

// Describe computes summary statistics for every column of src.
//
// The result has one row per statistic (count, null_count, mean, std,
// min, each requested percentile, max) and one column per source
// column, plus the leading "statistic" label column. Cells are display
// strings; statistics that do not apply to a column's type render as
// "null".
//
// A nil percentiles slice defaults to [0.25, 0.50, 0.75]. Fractions are
// passed through to the engine's quantile operator unvalidated; an
// unusable fraction surfaces as an *EngineError. Describing a source
// with no columns fails with ErrEmptySchema before any execution.
func Describe(src Source, percentiles []float64) (*frame.Frame, error) {
	schema := src.Schema()
	if schema.Len() == 0 {
		return nil, ErrEmptySchema
	}

	if percentiles == nil {
		percentiles = defaultPercentiles
	}

	labels := metricLabels(percentiles)
	requests := plan(schema, percentiles)
	logging.WithOp("describe").Debug("plan built",
		"columns", schema.Len(), "percentiles", len(percentiles), "requests", len(requests))

	wide, err := src.Select(requests...)
	if err != nil {
		return nil, &EngineError{Err: err}
	}

	return reshape(wide, schema, labels, percentiles)
}
