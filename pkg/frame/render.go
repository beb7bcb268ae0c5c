package frame

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// String renders the frame as an aligned text table. Null cells render
// as the literal "null".
func (f *Frame) String() string {
	headers := make([]string, len(f.series))
	for i, s := range f.series {
		headers[i] = s.name
	}

	rows := make([][]string, f.NumRows())
	for r := range rows {
		row := make([]string, len(f.series))
		for c, s := range f.series {
			if v := s.Value(r); v != nil {
				row[c] = v.String()
			} else {
				row[c] = "null"
			}
		}
		rows[r] = row
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	return fmt.Sprintf("shape: (%d, %d)\n%s", f.NumRows(), f.Width(), t.Render())
}
