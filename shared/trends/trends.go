package trends

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/fmitools/fmi-bd2cmake/service/storage"
)

// RenderTrendTable prints an ASCII table of generation activity per day.
func RenderTrendTable(points []storage.TrendPoint) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Date", "Runs", "Configurations", "Source Files", "Bytes Written"})
	for _, p := range points {
		t.AppendRow(table.Row{p.Date, p.Runs, p.Configurations, p.SourceFiles, p.BytesWritten})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
