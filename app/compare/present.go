package compare

import "strconv"

// Table is a date-by-date view of a comparison, one row per date.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ChartPoint is a single point of a chart series.
type ChartPoint struct {
	Date  string
	Views int
}

// ChartSeries is a single named line of a chart.
type ChartSeries struct {
	Name   string
	Points []ChartPoint
}

// ChartSpec describes a line chart of the compared pageviews. It carries
// everything a renderer needs, regardless of the charting backend.
type ChartSpec struct {
	Title       string
	XLabel      string
	YLabel      string
	LegendTitle string
	Height      int
	Dark        bool
	Series      []ChartSeries
}

// Present shapes a comparison into a table and a chart spec.
func Present(cmp Comparison) (Table, ChartSpec) {
	cols := []string{"Date", cmp.Titles[0] + " Views", cmp.Titles[1] + " Views"}

	table := Table{Columns: cols, Rows: make([][]string, 0, len(cmp.Rows))}
	series := []ChartSeries{
		{Name: cols[1], Points: make([]ChartPoint, 0, len(cmp.Rows))},
		{Name: cols[2], Points: make([]ChartPoint, 0, len(cmp.Rows))},
	}

	for _, row := range cmp.Rows {
		table.Rows = append(table.Rows, []string{
			row.Date,
			strconv.Itoa(row.Views[0]),
			strconv.Itoa(row.Views[1]),
		})
		series[0].Points = append(series[0].Points, ChartPoint{Date: row.Date, Views: row.Views[0]})
		series[1].Points = append(series[1].Points, ChartPoint{Date: row.Date, Views: row.Views[1]})
	}

	return table, ChartSpec{
		Title:       "Wikipedia Page Views Comparison",
		XLabel:      "Date",
		YLabel:      "Page Views",
		LegendTitle: "Topics",
		Height:      500,
		Dark:        true,
		Series:      series,
	}
}
