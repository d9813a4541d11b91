package repository

import (
	"context"
	"time"

	"nomlog/internal/domain/entity"

	"github.com/google/uuid"
)

// MealRepository defines the interface for meal-log database operations.
// Meal records are append-only; the only mutation is deletion.
type MealRepository interface {
	// CreateMeal persists a new consumption record.
	CreateMeal(ctx context.Context, meal *entity.Meal) error

	// DeleteMeal removes a meal record by ID. Deleting a meal that does not
	// exist is not an error.
	DeleteMeal(ctx context.Context, id uuid.UUID) error

	// FindMealsBetween retrieves all meals whose stored date falls within the
	// half-open window [from, to).
	FindMealsBetween(ctx context.Context, from, to time.Time) ([]*entity.Meal, error)

	// FindAllMeals retrieves every meal record, newest date first.
	FindAllMeals(ctx context.Context) ([]*entity.Meal, error)
}
