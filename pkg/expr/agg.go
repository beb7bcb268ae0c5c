package expr

import (
	"fmt"
	"strconv"
)

// AggKind identifies an aggregation function.
type AggKind int

const (
	Count AggKind = iota
	NullCount
	Mean
	Std
	Min
	Max
	Quantile
)

func (k AggKind) String() string {
	switch k {
	case Count:
		return "count"
	case NullCount:
		return "null_count"
	case Mean:
		return "mean"
	case Std:
		return "std"
	case Min:
		return "min"
	case Max:
		return "max"
	case Quantile:
		return "quantile"
	default:
		return "?"
	}
}

// AggExpr reduces its input to a single scalar. Ddof is only meaningful
// for Std; Fraction only for Quantile.
type AggExpr struct {
	Input    Expr
	Kind     AggKind
	Ddof     int
	Fraction float64
}

func (e *AggExpr) String() string {
	switch e.Kind {
	case Std:
		return fmt.Sprintf("%s.std(%d)", e.Input, e.Ddof)
	case Quantile:
		return fmt.Sprintf("%s.quantile(%s)", e.Input, strconv.FormatFloat(e.Fraction, 'g', -1, 64))
	default:
		return fmt.Sprintf("%s.%s()", e.Input, e.Kind)
	}
}

func (e *AggExpr) OutputName() string { return e.Input.OutputName() }

// Alias renames the aggregation result
func (e *AggExpr) Alias(name string) *AliasExpr {
	return &AliasExpr{Inner: e, AliasName: name}
}

// Aggregation constructors on column references.

func (e *ColExpr) Count() *AggExpr     { return &AggExpr{Input: e, Kind: Count} }
func (e *ColExpr) NullCount() *AggExpr { return &AggExpr{Input: e, Kind: NullCount} }
func (e *ColExpr) Mean() *AggExpr      { return &AggExpr{Input: e, Kind: Mean} }
func (e *ColExpr) Min() *AggExpr       { return &AggExpr{Input: e, Kind: Min} }
func (e *ColExpr) Max() *AggExpr       { return &AggExpr{Input: e, Kind: Max} }

// Std computes the standard deviation with the given delta degrees of
// freedom (1 for the sample estimator).
func (e *ColExpr) Std(ddof int) *AggExpr {
	return &AggExpr{Input: e, Kind: Std, Ddof: ddof}
}

// Quantile computes the rank-based value at fraction f in (0, 1],
// linearly interpolated between adjacent ranks.
func (e *ColExpr) Quantile(f float64) *AggExpr {
	return &AggExpr{Input: e, Kind: Quantile, Fraction: f}
}
