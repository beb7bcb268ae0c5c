package frame

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"statframe/pkg/types"
)

// FromRecord builds a frame from an Arrow record batch. Int64, Float64,
// Boolean, String and Timestamp columns are supported; null slots carry
// over as null cells. The record's memory is copied, so the caller may
// release it afterwards.
func FromRecord(rec arrow.Record) (*Frame, error) {
	series := make([]*Series, 0, rec.NumCols())
	for i := 0; i < int(rec.NumCols()); i++ {
		field := rec.Schema().Field(i)
		s, err := seriesFromArrow(field, rec.Column(i))
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}
	return NewFrame(series...)
}

func seriesFromArrow(field arrow.Field, col arrow.Array) (*Series, error) {
	values := make([]types.Value, col.Len())

	switch arr := col.(type) {
	case *array.Int64:
		for i := 0; i < arr.Len(); i++ {
			if !arr.IsNull(i) {
				values[i] = types.NewInt64Value(arr.Value(i))
			}
		}
		return &Series{name: field.Name, dtype: types.Int64Type, values: values}, nil

	case *array.Float64:
		for i := 0; i < arr.Len(); i++ {
			if !arr.IsNull(i) {
				values[i] = types.NewFloat64Value(arr.Value(i))
			}
		}
		return &Series{name: field.Name, dtype: types.Float64Type, values: values}, nil

	case *array.Boolean:
		for i := 0; i < arr.Len(); i++ {
			if !arr.IsNull(i) {
				values[i] = types.NewBoolValue(arr.Value(i))
			}
		}
		return &Series{name: field.Name, dtype: types.BoolType, values: values}, nil

	case *array.String:
		for i := 0; i < arr.Len(); i++ {
			if !arr.IsNull(i) {
				values[i] = types.NewStringValue(arr.Value(i))
			}
		}
		return &Series{name: field.Name, dtype: types.StringType, values: values}, nil

	case *array.Timestamp:
		tsType, ok := field.Type.(*arrow.TimestampType)
		if !ok {
			return nil, fmt.Errorf("column %q: timestamp array with %s field type", field.Name, field.Type)
		}
		for i := 0; i < arr.Len(); i++ {
			if !arr.IsNull(i) {
				values[i] = types.NewTimeValue(arr.Value(i).ToTime(tsType.Unit).UTC())
			}
		}
		return &Series{name: field.Name, dtype: types.TimestampType, values: values}, nil

	default:
		return nil, fmt.Errorf("column %q: unsupported arrow type %s", field.Name, field.Type)
	}
}
