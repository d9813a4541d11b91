package entity

import (
	"time"

	"github.com/google/uuid"
)

// Meal is an immutable record of one instance of consuming a food. The name,
// icon and serving-adjusted macros are snapshotted at logging time; later
// edits to the originating food never alter historical records.
type Meal struct {
	ID          uuid.UUID   `json:"id"`           // The unique identifier for the meal record.
	Name        string      `json:"name"`         // Food name captured at logging time.
	Icon        string      `json:"icon"`         // Food icon captured at logging time.
	Calories    int         `json:"calories"`     // Serving-adjusted calories, frozen at creation.
	Protein     int         `json:"protein"`      // Serving-adjusted protein grams, frozen at creation.
	ServingSize ServingSize `json:"serving_size"` // The fraction of a full serving that was eaten.
	MealTime    MealTime    `json:"meal_time"`    // The slot the meal was logged against.
	FoodID      uuid.UUID   `json:"food_id"`      // Non-owning reference to the originating food.
	Date        time.Time   `json:"date"`         // Midnight UTC of the calendar day the meal belongs to.
	CreatedAt   time.Time   `json:"created_at"`   // Timestamp of when the record was logged.
}

// Day returns the calendar day of the meal in YYYY-MM-DD form, derived from
// the stored day-boundary instant in UTC.
func (m *Meal) Day() string {
	return m.Date.UTC().Format(DayLayout)
}
