package frame

import (
	"fmt"
	"strings"

	"statframe/pkg/types"
)

// Schema describes a frame's shape without its data: an ordered list of
// (column name, data type) pairs with unique names.
type Schema struct {
	names  []string
	dtypes []types.DType
}

// NewSchema creates a schema from column names and types.
//
// Returns an error if the slices differ in length or a column name
// repeats. A schema with zero columns is valid; whether it is usable is
// the caller's concern.
func NewSchema(names []string, dtypes []types.DType) (*Schema, error) {
	if len(names) != len(dtypes) {
		return nil, fmt.Errorf("names and dtypes must have same length: %d != %d", len(names), len(dtypes))
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return nil, fmt.Errorf("duplicate column name: %s", name)
		}
		seen[name] = true
	}

	return &Schema{
		names:  append([]string{}, names...),
		dtypes: append([]types.DType{}, dtypes...),
	}, nil
}

// Len returns the number of columns in the schema
func (s *Schema) Len() int {
	return len(s.names)
}

// Name returns the name of the ith column.
func (s *Schema) Name(i int) string {
	return s.names[i]
}

// DType returns the data type of the ith column.
func (s *Schema) DType(i int) types.DType {
	return s.dtypes[i]
}

// Names returns a copy of the column names in order.
func (s *Schema) Names() []string {
	return append([]string{}, s.names...)
}

// DTypeByName returns the dtype for a column name.
func (s *Schema) DTypeByName(name string) (types.DType, bool) {
	for i, n := range s.names {
		if n == name {
			return s.dtypes[i], true
		}
	}
	return types.NullType, false
}

func (s *Schema) String() string {
	var sb strings.Builder
	sb.WriteString("Schema{\n")
	for i, name := range s.names {
		fmt.Fprintf(&sb, "  %s: %s\n", name, s.dtypes[i])
	}
	sb.WriteString("}")
	return sb.String()
}
