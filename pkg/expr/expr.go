// Package expr provides the lazy expression surface used to request
// aggregations from a frame. Expressions are plain description trees;
// evaluation happens in the frame package.
package expr

import (
	"fmt"

	"statframe/pkg/types"
)

// Expr represents an expression that can be evaluated against a frame.
type Expr interface {
	// String returns a string representation of the expression
	String() string

	// OutputName returns the column name the expression's result is
	// published under.
	OutputName() string
}

// ColExpr references a named column.
type ColExpr struct {
	Name string
}

// Col creates a column reference expression
func Col(name string) *ColExpr {
	return &ColExpr{Name: name}
}

func (e *ColExpr) String() string     { return fmt.Sprintf("col(%q)", e.Name) }
func (e *ColExpr) OutputName() string { return e.Name }

// Cast converts the column to a different type before aggregation.
func (e *ColExpr) Cast(target types.DType) *CastExpr {
	return &CastExpr{Inner: e, TargetType: target}
}

// Alias renames the column's result
func (e *ColExpr) Alias(name string) *AliasExpr {
	return &AliasExpr{Inner: e, AliasName: name}
}

// LitExpr represents a literal value. A nil Value is the typed null
// literal.
type LitExpr struct {
	Value types.Value
}

// Lit creates a literal value expression
func Lit(value types.Value) *LitExpr {
	return &LitExpr{Value: value}
}

func (e *LitExpr) String() string {
	if e.Value == nil {
		return "lit(null)"
	}
	return fmt.Sprintf("lit(%v)", e.Value)
}

func (e *LitExpr) OutputName() string { return "literal" }

func (e *LitExpr) Cast(target types.DType) *CastExpr {
	return &CastExpr{Inner: e, TargetType: target}
}

func (e *LitExpr) Alias(name string) *AliasExpr {
	return &AliasExpr{Inner: e, AliasName: name}
}

// AliasExpr wraps an expression with a new output name.
type AliasExpr struct {
	Inner     Expr
	AliasName string
}

func (e *AliasExpr) String() string     { return fmt.Sprintf("%s.alias(%q)", e.Inner, e.AliasName) }
func (e *AliasExpr) OutputName() string { return e.AliasName }

// CastExpr represents a type conversion applied before any enclosing
// aggregation.
type CastExpr struct {
	Inner      Expr
	TargetType types.DType
}

func (e *CastExpr) String() string {
	return fmt.Sprintf("%s.cast(%s)", e.Inner, e.TargetType)
}

func (e *CastExpr) OutputName() string { return e.Inner.OutputName() }

func (e *CastExpr) Alias(name string) *AliasExpr {
	return &AliasExpr{Inner: e, AliasName: name}
}

// Mean averages the casted column.
func (e *CastExpr) Mean() *AggExpr { return &AggExpr{Input: e, Kind: Mean} }
