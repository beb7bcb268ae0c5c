// Package describe computes a summary-statistics table for a frame.
//
// Given a dataset with typed, named columns and an optional list of
// quantile fractions, Describe produces a long-form table whose rows
// are the statistics count, null_count, mean, std, min, one row per
// requested percentile, and max, and whose columns mirror the dataset's
// columns. Every cell is a display string, or the literal "null" when
// the statistic does not apply to the column's type.
//
// The package decides per column type which statistics are valid,
// builds one batched aggregation over the dataset, and reshapes the
// single-row wide result into the final table. The dataset engine is
// reached only through the Source interface and is executed exactly
// once per call.
package describe
