package compare

import (
	"sort"

	"github.com/samber/lo"
)

// DailyViews is a view count of a single article on a single day.
type DailyViews struct {
	Date  string // YYYYMMDD
	Views int
}

// Row is a view count of both compared articles on a single day.
type Row struct {
	Date  string
	Views [2]int
}

// Merge aligns two daily series on the sorted union of their dates,
// filling in zeroes where a series has no data for a date.
func Merge(left, right []DailyViews) []Row {
	lm, rm := byDate(left), byDate(right)

	dates := lo.Uniq(append(lo.Keys(lm), lo.Keys(rm)...))
	sort.Strings(dates)

	rows := make([]Row, 0, len(dates))
	for _, date := range dates {
		rows = append(rows, Row{Date: date, Views: [2]int{lm[date], rm[date]}})
	}

	return rows
}

func byDate(views []DailyViews) map[string]int {
	m := make(map[string]int, len(views))
	for _, v := range views {
		m[v.Date] = v.Views
	}
	return m
}
