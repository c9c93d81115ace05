package weather

import (
	"bytes"

	"github.com/olekukonko/tablewriter"
)

// Render produces a markdown-style grid table: headers first, one data
// row per forecast timestep, no index column.
func Render(t *Table) string {
	var buf bytes.Buffer
	w := tablewriter.NewWriter(&buf)
	w.SetHeader(t.Headers)
	w.SetAutoFormatHeaders(false)
	w.SetAutoWrapText(false)
	w.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	w.SetAlignment(tablewriter.ALIGN_LEFT)
	w.SetCenterSeparator("|")
	w.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	w.AppendBulk(t.Rows)
	w.Render()
	return buf.String()
}
