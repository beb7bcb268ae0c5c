package describe

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statframe/pkg/expr"
	"statframe/pkg/frame"
	"statframe/pkg/types"
)

// countingSource wraps a frame and records how often the engine is
// asked to execute.
type countingSource struct {
	frame   *frame.Frame
	selects int
}

func (c *countingSource) Schema() *frame.Schema { return c.frame.Schema() }

func (c *countingSource) Select(exprs ...expr.Expr) (*frame.Frame, error) {
	c.selects++
	return c.frame.Select(exprs...)
}

func mustDataFrame(t *testing.T, series ...*frame.Series) *frame.Frame {
	t.Helper()
	f, err := frame.NewFrame(series...)
	require.NoError(t, err)
	return f
}

// cell returns the display string at (statistic label, column).
func cell(t *testing.T, out *frame.Frame, label, column string) string {
	t.Helper()
	stats, ok := out.Column("statistic")
	require.True(t, ok)
	col, ok := out.Column(column)
	require.True(t, ok)
	for i := 0; i < stats.Len(); i++ {
		if stats.Value(i).String() == label {
			return col.Value(i).String()
		}
	}
	t.Fatalf("no %q row in output", label)
	return ""
}

func statisticRows(t *testing.T, out *frame.Frame) []string {
	t.Helper()
	stats, ok := out.Column("statistic")
	require.True(t, ok)
	rows := make([]string, stats.Len())
	for i := range rows {
		rows[i] = stats.Value(i).String()
	}
	return rows
}

func TestDescribeNumericColumns(t *testing.T) {
	df := mustDataFrame(t,
		frame.Int64s("ints", []int64{1, 2, 3, 4, 5}),
		frame.Float64s("floats", []float64{1.0, 2.0, 3.0, 4.0, 5.0}),
	)

	out, err := Describe(df, nil)
	require.NoError(t, err)

	assert.Equal(t, 9, out.NumRows())
	assert.Equal(t, 3, out.Width())
	assert.Equal(t, []string{"statistic", "ints", "floats"}, out.Schema().Names())
	assert.Equal(t,
		[]string{"count", "null_count", "mean", "std", "min", "25%", "50%", "75%", "max"},
		statisticRows(t, out))

	assert.Equal(t, "5", cell(t, out, "count", "ints"))
	assert.Equal(t, "0", cell(t, out, "null_count", "ints"))
	assert.Equal(t, "3.000000", cell(t, out, "mean", "ints"))
	assert.Equal(t, "1.581139", cell(t, out, "std", "ints"))
	assert.Equal(t, "1", cell(t, out, "min", "ints"))
	assert.Equal(t, "2", cell(t, out, "25%", "ints"))
	assert.Equal(t, "3", cell(t, out, "50%", "ints"))
	assert.Equal(t, "4", cell(t, out, "75%", "ints"))
	assert.Equal(t, "5", cell(t, out, "max", "ints"))

	assert.Equal(t, "3.000000", cell(t, out, "mean", "floats"))
}

func TestDescribeMixedTypes(t *testing.T) {
	df := mustDataFrame(t,
		frame.Int64s("numbers", []int64{1, 2, 3}),
		frame.Strings("strings", []string{"a", "b", "c"}),
		frame.Bools("bools", []bool{true, false, true}),
	)

	out, err := Describe(df, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, out.Width())
	assert.Equal(t, "null", cell(t, out, "std", "strings"))
	assert.Equal(t, "0.666667", cell(t, out, "mean", "bools"))
	assert.Equal(t, "a", cell(t, out, "min", "strings"))
	assert.Equal(t, "c", cell(t, out, "max", "strings"))
	assert.Equal(t, "null", cell(t, out, "25%", "strings"))
	assert.Equal(t, "3", cell(t, out, "count", "strings"))
}

func TestDescribeBooleanExtremesAreLiterals(t *testing.T) {
	// All-true data still reads false/true on the min/max rows.
	df := mustDataFrame(t, frame.Bools("flags", []bool{true, true, true}))

	out, err := Describe(df, nil)
	require.NoError(t, err)

	assert.Equal(t, "false", cell(t, out, "min", "flags"))
	assert.Equal(t, "true", cell(t, out, "max", "flags"))
}

func TestDescribeCustomPercentiles(t *testing.T) {
	df := mustDataFrame(t, frame.Int64s("values", []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))

	out, err := Describe(df, []float64{0.1, 0.5, 0.9})
	require.NoError(t, err)

	assert.Equal(t, 9, out.NumRows())
	assert.Equal(t,
		[]string{"count", "null_count", "mean", "std", "min", "10%", "50%", "90%", "max"},
		statisticRows(t, out))
	assert.Equal(t, "1.9", cell(t, out, "10%", "values"))
	assert.Equal(t, "5.5", cell(t, out, "50%", "values"))
	assert.Equal(t, "9.1", cell(t, out, "90%", "values"))
}

func TestDescribeEmptyPercentileList(t *testing.T) {
	df := mustDataFrame(t, frame.Int64s("a", []int64{1, 2, 3}))

	out, err := Describe(df, []float64{})
	require.NoError(t, err)

	assert.Equal(t, 6, out.NumRows())
	assert.Equal(t,
		[]string{"count", "null_count", "mean", "std", "min", "max"},
		statisticRows(t, out))
}

func TestDescribeDuplicatePercentiles(t *testing.T) {
	df := mustDataFrame(t, frame.Int64s("a", []int64{1, 2, 3}))

	out, err := Describe(df, []float64{0.5, 0.5})
	require.NoError(t, err)

	rows := statisticRows(t, out)
	assert.Equal(t, []string{"count", "null_count", "mean", "std", "min", "50%", "50%", "max"}, rows)
	assert.Equal(t, 8, out.NumRows())
}

func TestDescribeNullAwareCounts(t *testing.T) {
	s, err := frame.NewSeries("a", types.Int64Type, []types.Value{
		types.NewInt64Value(1), nil, types.NewInt64Value(3), nil, nil,
	})
	require.NoError(t, err)
	df := mustDataFrame(t, s)

	out, err := Describe(df, nil)
	require.NoError(t, err)

	assert.Equal(t, "2", cell(t, out, "count", "a"))
	assert.Equal(t, "3", cell(t, out, "null_count", "a"))
	assert.NotContains(t, cell(t, out, "count", "a"), ".")
	assert.NotContains(t, cell(t, out, "null_count", "a"), ".")
}

func TestDescribeTemporalColumn(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	df := mustDataFrame(t, frame.Times("ts", []time.Time{t0, t0.Add(2 * time.Hour)}))

	out, err := Describe(df, nil)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01 01:00:00", cell(t, out, "mean", "ts"))
	assert.Equal(t, "2024-01-01 00:00:00", cell(t, out, "min", "ts"))
	assert.Equal(t, "2024-01-01 02:00:00", cell(t, out, "max", "ts"))
	assert.Equal(t, "null", cell(t, out, "std", "ts"))
	assert.Equal(t, "null", cell(t, out, "50%", "ts"))
}

func TestDescribeNestedAndCategoricalColumns(t *testing.T) {
	lists, err := frame.NewSeries("lists", types.ListType, []types.Value{
		types.NewListValue([]types.Value{types.NewInt64Value(1)}),
		nil,
	})
	require.NoError(t, err)
	cats, err := frame.NewSeries("cats", types.CategoricalType, []types.Value{
		types.NewStringValue("red"),
		types.NewStringValue("blue"),
	})
	require.NoError(t, err)
	df := mustDataFrame(t, lists, cats)

	out, err := Describe(df, nil)
	require.NoError(t, err)

	assert.Equal(t, "1", cell(t, out, "count", "lists"))
	assert.Equal(t, "1", cell(t, out, "null_count", "lists"))
	for _, label := range []string{"mean", "std", "min", "50%", "max"} {
		assert.Equal(t, "null", cell(t, out, label, "lists"), "lists %s", label)
		assert.Equal(t, "null", cell(t, out, label, "cats"), "cats %s", label)
	}
}

func TestDescribeEmptySchema(t *testing.T) {
	df := mustDataFrame(t)
	src := &countingSource{frame: df}

	_, err := Describe(src, nil)
	require.ErrorIs(t, err, ErrEmptySchema)
	assert.Equal(t, 0, src.selects, "no engine execution for an empty schema")
}

func TestDescribeExecutesEngineOnce(t *testing.T) {
	df := mustDataFrame(t,
		frame.Int64s("a", []int64{1, 2, 3}),
		frame.Strings("b", []string{"x", "y", "z"}),
	)
	src := &countingSource{frame: df}

	_, err := Describe(src, []float64{0.1, 0.2, 0.3, 0.4})
	require.NoError(t, err)
	assert.Equal(t, 1, src.selects)
}

func TestDescribeEngineErrorPropagates(t *testing.T) {
	df := mustDataFrame(t, frame.Int64s("a", []int64{1, 2, 3}))

	_, err := Describe(df, []float64{1.5})
	require.Error(t, err)

	var engineErr *EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Contains(t, engineErr.Err.Error(), "out of range")
}

func TestDescribeIdempotent(t *testing.T) {
	df := mustDataFrame(t,
		frame.Int64s("a", []int64{1, 2, 3}),
		frame.Bools("b", []bool{true, false, true}),
	)

	first, err := Describe(df, nil)
	require.NoError(t, err)
	second, err := Describe(df, nil)
	require.NoError(t, err)

	require.Equal(t, first.NumRows(), second.NumRows())
	require.Equal(t, first.Schema().Names(), second.Schema().Names())
	for _, name := range first.Schema().Names() {
		a, _ := first.Column(name)
		b, _ := second.Column(name)
		for i := 0; i < a.Len(); i++ {
			assert.Equal(t, a.Value(i).String(), b.Value(i).String())
		}
	}
}

func TestPlannedKeysAllPresentInWideResult(t *testing.T) {
	df := mustDataFrame(t,
		frame.Int64s("n", []int64{1, 2, 3}),
		frame.Strings("s", []string{"a", "b", "c"}),
		frame.Bools("b", []bool{true, false, false}),
	)
	percentiles := []float64{0.25, 0.5, 0.75}

	requests := plan(df.Schema(), percentiles)
	wide, err := df.Select(requests...)
	require.NoError(t, err)

	for _, r := range requests {
		_, ok := wide.Column(r.OutputName())
		assert.True(t, ok, "key %q missing from wide result", r.OutputName())
	}
	assert.Equal(t, len(requests), wide.Width())
}

func TestDescribeErrorLayers(t *testing.T) {
	df := mustDataFrame(t, frame.Int64s("a", []int64{1}))

	_, err := Describe(df, []float64{-1})
	var engineErr *EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.False(t, errors.Is(err, ErrEmptySchema))
}
