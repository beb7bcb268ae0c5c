// Package frame implements a small in-memory columnar dataset: typed,
// named, nullable series collected into a frame, with schema
// introspection and single-pass evaluation of aggregation expressions.
package frame

import (
	"fmt"

	"statframe/pkg/types"
)

// Frame is an ordered collection of equal-length series with unique
// names. A frame with zero columns is valid but cannot be described.
type Frame struct {
	series []*Series
	byName map[string]int
}

// NewFrame creates a frame from the given series.
//
// Returns an error if two series share a name or differ in length.
func NewFrame(series ...*Series) (*Frame, error) {
	byName := make(map[string]int, len(series))
	for i, s := range series {
		if _, ok := byName[s.name]; ok {
			return nil, fmt.Errorf("duplicate column name: %s", s.name)
		}
		if s.Len() != series[0].Len() {
			return nil, fmt.Errorf("column %q has length %d, want %d", s.name, s.Len(), series[0].Len())
		}
		byName[s.name] = i
	}
	return &Frame{series: append([]*Series{}, series...), byName: byName}, nil
}

// Width returns the number of columns.
func (f *Frame) Width() int {
	return len(f.series)
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int {
	if len(f.series) == 0 {
		return 0
	}
	return f.series[0].Len()
}

// Column returns the series with the given name.
func (f *Frame) Column(name string) (*Series, bool) {
	i, ok := f.byName[name]
	if !ok {
		return nil, false
	}
	return f.series[i], true
}

// ColumnAt returns the ith series.
func (f *Frame) ColumnAt(i int) *Series {
	return f.series[i]
}

// Schema returns the frame's schema without touching row data.
func (f *Frame) Schema() *Schema {
	names := make([]string, len(f.series))
	dtypes := make([]types.DType, len(f.series))
	for i, s := range f.series {
		names[i] = s.name
		dtypes[i] = s.dtype
	}
	return &Schema{names: names, dtypes: dtypes}
}
