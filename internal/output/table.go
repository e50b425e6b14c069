package output

import (
	"io"

	"github.com/rodaine/table"
)

// RenderTable renders records as a table for rich mode.
func RenderTable(w io.Writer, columns []Column, rows []Record) {
	if len(rows) == 0 {
		return
	}

	headers := make([]any, len(columns))
	for i, col := range columns {
		headers[i] = col.Name
	}

	tbl := table.New(headers...).WithWriter(w)
	for _, row := range rows {
		values := make([]any, len(columns))
		for i, col := range columns {
			value := row.Get(col.Key)
			if col.Width > 0 {
				value = Truncate(value, col.Width)
			}
			values[i] = value
		}
		tbl.AddRow(values...)
	}
	tbl.Print()
}

// Truncate shortens a string to maxLen, ending in "..." when cut.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
