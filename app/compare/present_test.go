package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresent(t *testing.T) {
	table, spec := Present(Comparison{
		Titles: [2]string{"Foo", "Bar"},
		Rows: []Row{
			{Date: "20230301", Views: [2]int{3, 0}},
			{Date: "20230302", Views: [2]int{6, 4}},
		},
	})

	assert.Equal(t, Table{
		Columns: []string{"Date", "Foo Views", "Bar Views"},
		Rows: [][]string{
			{"20230301", "3", "0"},
			{"20230302", "6", "4"},
		},
	}, table)

	assert.Equal(t, "Wikipedia Page Views Comparison", spec.Title)
	assert.Equal(t, "Date", spec.XLabel)
	assert.Equal(t, "Page Views", spec.YLabel)
	assert.Equal(t, "Topics", spec.LegendTitle)
	assert.Equal(t, 500, spec.Height)
	assert.True(t, spec.Dark)

	require.Len(t, spec.Series, 2)
	assert.Equal(t, ChartSeries{Name: "Foo Views", Points: []ChartPoint{
		{Date: "20230301", Views: 3},
		{Date: "20230302", Views: 6},
	}}, spec.Series[0])
	assert.Equal(t, ChartSeries{Name: "Bar Views", Points: []ChartPoint{
		{Date: "20230301", Views: 0},
		{Date: "20230302", Views: 4},
	}}, spec.Series[1])
}

func TestPresent_NoRows(t *testing.T) {
	table, spec := Present(Comparison{Titles: [2]string{"Foo", "Bar"}})

	assert.Equal(t, []string{"Date", "Foo Views", "Bar Views"}, table.Columns)
	assert.Empty(t, table.Rows)

	require.Len(t, spec.Series, 2)
	assert.Empty(t, spec.Series[0].Points)
	assert.Empty(t, spec.Series[1].Points)
}
