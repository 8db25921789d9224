package history

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderTable writes the runs as an aligned text table.
func RenderTable(w io.Writer, runs []Run) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Date", "User", "Followers", "Gained", "Removed", "Outcome"})
	for _, r := range runs {
		t.AppendRow(table.Row{r.Date, r.Username, r.Followers, r.Gained, r.Removed, r.Outcome})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
