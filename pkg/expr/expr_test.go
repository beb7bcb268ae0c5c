package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"statframe/pkg/types"
)

func TestExprString(t *testing.T) {
	tests := []struct {
		name string
		e    Expr
		want string
	}{
		{"column", Col("age"), `col("age")`},
		{"count", Col("age").Count(), `col("age").count()`},
		{"null count", Col("age").NullCount(), `col("age").null_count()`},
		{"mean", Col("age").Mean(), `col("age").mean()`},
		{"sample std", Col("age").Std(1), `col("age").std(1)`},
		{"quantile", Col("age").Quantile(0.25), `col("age").quantile(0.25)`},
		{"cast then mean", Col("flag").Cast(types.Float64Type).Mean(), `col("flag").cast(FLOAT64).mean()`},
		{"null literal", Lit(nil), "lit(null)"},
		{"aliased", Col("age").Min().Alias("min:age"), `col("age").min().alias("min:age")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.e.String())
		})
	}
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "age", Col("age").OutputName())
	assert.Equal(t, "age", Col("age").Mean().OutputName())
	assert.Equal(t, "flag", Col("flag").Cast(types.Float64Type).Mean().OutputName())
	assert.Equal(t, "mean:age", Col("age").Mean().Alias("mean:age").OutputName())
	assert.Equal(t, "k", Lit(nil).Cast(types.Float64Type).Alias("k").OutputName())
}

func TestQuantileCarriesFraction(t *testing.T) {
	q := Col("x").Quantile(0.9)
	assert.Equal(t, Quantile, q.Kind)
	assert.Equal(t, 0.9, q.Fraction)

	s := Col("x").Std(1)
	assert.Equal(t, Std, s.Kind)
	assert.Equal(t, 1, s.Ddof)
}
