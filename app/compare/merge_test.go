package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	left := []DailyViews{
		{Date: "20230301", Views: 10},
		{Date: "20230302", Views: 20},
	}
	right := []DailyViews{
		{Date: "20230302", Views: 1},
		{Date: "20230304", Views: 2},
	}

	assert.Equal(t, []Row{
		{Date: "20230301", Views: [2]int{10, 0}},
		{Date: "20230302", Views: [2]int{20, 1}},
		{Date: "20230304", Views: [2]int{0, 2}},
	}, Merge(left, right))
}

func TestMerge_Empty(t *testing.T) {
	assert.Empty(t, Merge(nil, nil))

	assert.Equal(t, []Row{{Date: "20230301", Views: [2]int{0, 5}}},
		Merge(nil, []DailyViews{{Date: "20230301", Views: 5}}))
}

func TestMerge_UnsortedInput(t *testing.T) {
	left := []DailyViews{
		{Date: "20230303", Views: 3},
		{Date: "20230301", Views: 1},
	}

	assert.Equal(t, []Row{
		{Date: "20230301", Views: [2]int{1, 0}},
		{Date: "20230303", Views: [2]int{3, 0}},
	}, Merge(left, nil))
}

func TestMerge_DuplicateDates(t *testing.T) {
	// the last occurrence of a date wins
	left := []DailyViews{
		{Date: "20230301", Views: 1},
		{Date: "20230301", Views: 7},
	}

	assert.Equal(t, []Row{{Date: "20230301", Views: [2]int{7, 0}}}, Merge(left, nil))
}
