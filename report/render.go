// Package report renders storage cost reports as bordered text tables.
package report

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/jacklottery/storage/costs"
)

// Render writes the report to w as a bordered grid, header row first,
// one line per data row. Floats are written with the shortest
// representation that parses back to the same value.
func Render(w io.Writer, r *costs.Report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(r.Header())
	table.SetAutoFormatHeaders(false)
	table.SetBorder(true)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	data := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		data = append(data, []string{
			strconv.Itoa(row.TicketCount),
			formatFloat(row.BLSHash),
			formatFloat(row.Jack),
			formatFloat(row.Ratio),
		})
	}
	table.AppendBulk(data)
	table.Render()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
