package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mealFixture(name string, mealTime MealTime, calories, protein int) *Meal {
	return &Meal{
		ID:       uuid.New(),
		Name:     name,
		Calories: calories,
		Protein:  protein,
		MealTime: mealTime,
		Date:     time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewDailyStats_TotalsAndOrdering(t *testing.T) {
	meals := []*Meal{
		mealFixture("Yogurt", MealTimeSnack, 120, 10),
		mealFixture("Oatmeal", MealTimeBreakfast, 300, 8),
		mealFixture("Chicken Breast", MealTimeLunch, 83, 16),
		mealFixture("Apple", MealTimeLunch, 95, 0),
		mealFixture("Eggs", MealTimeBreakfast, 140, 12),
	}

	stats := NewDailyStats("2026-08-28", meals)

	assert.Equal(t, "2026-08-28", stats.Date)
	assert.Equal(t, 120+300+83+95+140, stats.TotalCalories)
	assert.Equal(t, 10+8+16+0+12, stats.TotalProtein)

	require.Len(t, stats.Meals, 5)
	// Breakfast before lunch before snack, names ascending within a slot.
	var got []string
	for _, meal := range stats.Meals {
		got = append(got, meal.Name)
	}
	assert.Equal(t, []string{"Eggs", "Oatmeal", "Apple", "Chicken Breast", "Yogurt"}, got)
}

func TestNewDailyStats_EmptyDay(t *testing.T) {
	stats := NewDailyStats("2026-08-28", nil)

	assert.Equal(t, 0, stats.TotalCalories)
	assert.Equal(t, 0, stats.TotalProtein)
	assert.NotNil(t, stats.Meals)
	assert.Empty(t, stats.Meals)
}

func TestMealTime_SortOrder(t *testing.T) {
	assert.Less(t, MealTimeBreakfast.SortOrder(), MealTimeLunch.SortOrder())
	assert.Less(t, MealTimeLunch.SortOrder(), MealTimeDinner.SortOrder())
	assert.Less(t, MealTimeDinner.SortOrder(), MealTimeSnack.SortOrder())
	assert.Greater(t, MealTime("brunch").SortOrder(), MealTimeSnack.SortOrder())
}

func TestMealTime_Valid(t *testing.T) {
	for _, mealTime := range []MealTime{MealTimeBreakfast, MealTimeLunch, MealTimeDinner, MealTimeSnack} {
		assert.True(t, mealTime.Valid(), string(mealTime))
	}
	assert.False(t, MealTime("brunch").Valid())
	assert.False(t, MealTime("").Valid())
}

func TestMeal_Day(t *testing.T) {
	meal := &Meal{Date: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "2026-08-27", meal.Day())
}
