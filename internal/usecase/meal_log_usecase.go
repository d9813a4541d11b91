package usecase

import (
	"context"

	"nomlog/internal/domain/entity"

	"github.com/google/uuid"
)

// LogMealInput carries the raw fields of a meal-logging request. Tokens are
// kept as strings so the use case owns enum validation.
type LogMealInput struct {
	FoodID      string `json:"food_id"`
	MealTime    string `json:"meal_time"`
	ServingSize string `json:"serving_size"`
	Date        string `json:"date"` // Calendar day in YYYY-MM-DD form.
}

// MealLogUsecase defines the interface for meal logging use cases
type MealLogUsecase interface {
	// LogMeal validates the input, looks up the food, applies the serving
	// multiplier and inserts an immutable meal record for the given calendar
	// day. Returns the created record.
	LogMeal(ctx context.Context, input LogMealInput) (*entity.Meal, error)

	// DeleteMeal removes a meal record unconditionally; a missing ID is
	// still reported as success.
	DeleteMeal(ctx context.Context, id uuid.UUID) error
}
