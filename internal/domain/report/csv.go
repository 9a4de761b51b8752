package report

import "strings"

// Table is a flat, column-ordered result set ready for export.
type Table struct {
	Columns []string
	Rows    [][]string
}

// MarshalCSV renders the table as newline-joined comma-separated
// lines, header first, with no trailing newline. Values are written
// verbatim, without quoting: the exported columns are controlled
// fields (codes, dates, numbers, statuses), not free text.
func MarshalCSV(t Table) []byte {
	lines := make([]string, 0, len(t.Rows)+1)
	lines = append(lines, strings.Join(t.Columns, ","))

	for _, row := range t.Rows {
		lines = append(lines, strings.Join(row, ","))
	}

	return []byte(strings.Join(lines, "\n"))
}
