package stats

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// RenderChart writes an HTML line chart of follower counts over time.
func RenderChart(w io.Writer, points []Point) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Followers Over Time"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
	)

	var days []string
	var counts []opts.LineData
	for _, p := range points {
		days = append(days, p.Day)
		counts = append(counts, opts.LineData{Value: p.Count})
	}

	line.SetXAxis(days).AddSeries("Followers", counts)
	return line.Render(w)
}
