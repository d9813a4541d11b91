package entity

import (
	"sort"
	"strings"
)

// DayLayout is the calendar-day form used for stored dates, grouping keys and
// API payloads.
const DayLayout = "2006-01-02"

// DailyStats is the derived aggregation of all meals for one calendar day.
// It is recomputed on every read and never persisted.
type DailyStats struct {
	Date          string  `json:"date"`           // Calendar day in YYYY-MM-DD form.
	TotalCalories int     `json:"total_calories"` // Sum of the adjusted calories of all meals for the day.
	TotalProtein  int     `json:"total_protein"`  // Sum of the adjusted protein of all meals for the day.
	Meals         []*Meal `json:"meals"`          // The day's meals, ordered by meal-time slot then name.
}

// NewDailyStats builds the aggregation for one calendar day. Meals are
// ordered by the fixed meal-time slot order, then by name ascending.
func NewDailyStats(date string, meals []*Meal) *DailyStats {
	if meals == nil {
		meals = []*Meal{}
	}

	stats := &DailyStats{
		Date:  date,
		Meals: meals,
	}
	for _, meal := range meals {
		stats.TotalCalories += meal.Calories
		stats.TotalProtein += meal.Protein
	}

	sort.SliceStable(stats.Meals, func(i, j int) bool {
		left, right := stats.Meals[i], stats.Meals[j]
		if left.MealTime.SortOrder() != right.MealTime.SortOrder() {
			return left.MealTime.SortOrder() < right.MealTime.SortOrder()
		}

		return strings.Compare(left.Name, right.Name) < 0
	})

	return stats
}
