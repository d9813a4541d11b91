package impl

import (
	"context"
	"strings"
	"time"

	"nomlog/internal/domain/entity"
	domainerrors "nomlog/internal/domain/errors"
	"nomlog/internal/domain/repository"
	"nomlog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type mealLogService struct {
	foodRepo repository.FoodRepository
	mealRepo repository.MealRepository
}

// NewMealLogService creates a new meal logging service instance
func NewMealLogService(foodRepo repository.FoodRepository, mealRepo repository.MealRepository) usecase.MealLogUsecase {
	return &mealLogService{
		foodRepo: foodRepo,
		mealRepo: mealRepo,
	}
}

// LogMeal validates the input, looks up the food, applies the serving
// multiplier and inserts an immutable meal record for the given calendar day.
//
// The name, icon and adjusted macros are snapshotted onto the record: later
// edits to the food's base macros never alter meals that were already logged.
func (s *mealLogService) LogMeal(ctx context.Context, input usecase.LogMealInput) (*entity.Meal, error) {
	rawFoodID := strings.TrimSpace(input.FoodID)
	if rawFoodID == "" {
		return nil, domainerrors.NewValidationError("Food ID is required")
	}
	foodID, err := uuid.Parse(rawFoodID)
	if err != nil {
		return nil, domainerrors.NewValidationError("Invalid food ID")
	}

	mealTime := entity.MealTime(input.MealTime)
	if !mealTime.Valid() {
		return nil, domainerrors.NewValidationError("Invalid meal time")
	}

	servingSize := entity.ServingSize(input.ServingSize)
	if !servingSize.Valid() {
		return nil, domainerrors.NewValidationError("Invalid serving size")
	}

	if strings.TrimSpace(input.Date) == "" {
		return nil, domainerrors.NewValidationError("Date is required")
	}
	// The calendar day resolves to midnight UTC, so the same day string
	// always maps to the same stored instant regardless of server zone.
	day, err := time.ParseInLocation(entity.DayLayout, input.Date, time.UTC)
	if err != nil {
		return nil, domainerrors.NewValidationError("Invalid date, expected YYYY-MM-DD")
	}

	food, err := s.foodRepo.FindFoodByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return nil, domainerrors.ErrFoodNotFound
		}

		return nil, errors.Wrap(err, "failed to find food by ID")
	}

	calories, protein := servingSize.Adjust(food.Calories, food.Protein)

	meal := &entity.Meal{
		ID:          uuid.New(),
		Name:        food.Name,
		Icon:        food.Icon,
		Calories:    calories,
		Protein:     protein,
		ServingSize: servingSize,
		MealTime:    mealTime,
		FoodID:      food.ID,
		Date:        day,
	}

	if err := s.mealRepo.CreateMeal(ctx, meal); err != nil {
		return nil, errors.Wrap(err, "failed to create meal")
	}

	return meal, nil
}

// DeleteMeal removes a meal record unconditionally; a missing ID is still
// reported as success.
func (s *mealLogService) DeleteMeal(ctx context.Context, id uuid.UUID) error {
	if err := s.mealRepo.DeleteMeal(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete meal")
	}

	return nil
}
