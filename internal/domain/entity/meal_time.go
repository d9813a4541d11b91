package entity

// MealTime is the coarse slot a meal is logged against.
type MealTime string

const (
	MealTimeBreakfast MealTime = "breakfast"
	MealTimeLunch     MealTime = "lunch"
	MealTimeDinner    MealTime = "dinner"
	MealTimeSnack     MealTime = "snack"
)

// mealTimeOrder fixes the display order: breakfast, lunch, dinner, snack.
var mealTimeOrder = map[MealTime]int{
	MealTimeBreakfast: 0,
	MealTimeLunch:     1,
	MealTimeDinner:    2,
	MealTimeSnack:     3,
}

// Valid reports whether the meal time is one of the four known slots.
func (m MealTime) Valid() bool {
	_, ok := mealTimeOrder[m]

	return ok
}

// SortOrder returns the slot's position in the fixed display order.
// Unknown slots sort last.
func (m MealTime) SortOrder() int {
	if order, ok := mealTimeOrder[m]; ok {
		return order
	}

	return len(mealTimeOrder)
}
