package impl

import (
	"context"
	"testing"
	"time"

	"nomlog/internal/domain/entity"
	domainerrors "nomlog/internal/domain/errors"
	"nomlog/internal/domain/repository"
	mockRepo "nomlog/internal/mocks/repository"
	"nomlog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMealLogService_LogMeal(t *testing.T) {
	mockFoodRepo := mockRepo.NewMockFoodRepository(t)
	mockMealRepo := mockRepo.NewMockMealRepository(t)
	service := NewMealLogService(mockFoodRepo, mockMealRepo)

	ctx := context.Background()
	foodID := uuid.New()
	food := &entity.Food{ID: foodID, Name: "Chicken Breast", Calories: 165, Protein: 31, Icon: "🍗"}

	mockFoodRepo.EXPECT().
		FindFoodByID(ctx, foodID).
		Return(food, nil)

	mockMealRepo.EXPECT().
		CreateMeal(ctx, mock.AnythingOfType("*entity.Meal")).
		Return(nil)

	meal, err := service.LogMeal(ctx, usecase.LogMealInput{
		FoodID:      foodID.String(),
		MealTime:    "lunch",
		ServingSize: "1/2",
		Date:        "2026-08-28",
	})
	require.NoError(t, err)
	require.NotNil(t, meal)

	// The snapshot carries serving-adjusted macros, frozen at creation.
	assert.Equal(t, "Chicken Breast", meal.Name)
	assert.Equal(t, "🍗", meal.Icon)
	assert.Equal(t, 83, meal.Calories)
	assert.Equal(t, 16, meal.Protein)
	assert.Equal(t, entity.ServingHalf, meal.ServingSize)
	assert.Equal(t, entity.MealTimeLunch, meal.MealTime)
	assert.Equal(t, foodID, meal.FoodID)
	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), meal.Date)
}

func TestMealLogService_LogMeal_SnapshotIndependentOfFood(t *testing.T) {
	mockFoodRepo := mockRepo.NewMockFoodRepository(t)
	mockMealRepo := mockRepo.NewMockMealRepository(t)
	service := NewMealLogService(mockFoodRepo, mockMealRepo)

	ctx := context.Background()
	foodID := uuid.New()
	food := &entity.Food{ID: foodID, Name: "Oatmeal", Calories: 300, Protein: 10, Icon: "🥣"}

	mockFoodRepo.EXPECT().
		FindFoodByID(ctx, foodID).
		Return(food, nil)

	mockMealRepo.EXPECT().
		CreateMeal(ctx, mock.AnythingOfType("*entity.Meal")).
		Return(nil)

	meal, err := service.LogMeal(ctx, usecase.LogMealInput{
		FoodID:      foodID.String(),
		MealTime:    "breakfast",
		ServingSize: "1",
		Date:        "2026-08-28",
	})
	require.NoError(t, err)

	// Mutating the catalog entry afterwards must not touch the record.
	food.Calories = 999
	food.Name = "Renamed"
	assert.Equal(t, 300, meal.Calories)
	assert.Equal(t, "Oatmeal", meal.Name)
}

func TestMealLogService_LogMeal_Validation(t *testing.T) {
	foodID := uuid.New().String()

	tests := []struct {
		name    string
		input   usecase.LogMealInput
		wantMsg string
	}{
		{
			name:    "missing food ID",
			input:   usecase.LogMealInput{FoodID: " ", MealTime: "lunch", ServingSize: "1/2", Date: "2026-08-28"},
			wantMsg: "Food ID is required",
		},
		{
			name:    "malformed food ID",
			input:   usecase.LogMealInput{FoodID: "not-a-uuid", MealTime: "lunch", ServingSize: "1/2", Date: "2026-08-28"},
			wantMsg: "Invalid food ID",
		},
		{
			name:    "unknown meal time",
			input:   usecase.LogMealInput{FoodID: foodID, MealTime: "brunch", ServingSize: "1/2", Date: "2026-08-28"},
			wantMsg: "Invalid meal time",
		},
		{
			name:    "unknown serving size",
			input:   usecase.LogMealInput{FoodID: foodID, MealTime: "lunch", ServingSize: "1/5", Date: "2026-08-28"},
			wantMsg: "Invalid serving size",
		},
		{
			name:    "missing date",
			input:   usecase.LogMealInput{FoodID: foodID, MealTime: "lunch", ServingSize: "1/2", Date: ""},
			wantMsg: "Date is required",
		},
		{
			name:    "malformed date",
			input:   usecase.LogMealInput{FoodID: foodID, MealTime: "lunch", ServingSize: "1/2", Date: "28/08/2026"},
			wantMsg: "Invalid date, expected YYYY-MM-DD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No store access may happen on validation failure.
			mockFoodRepo := mockRepo.NewMockFoodRepository(t)
			mockMealRepo := mockRepo.NewMockMealRepository(t)
			service := NewMealLogService(mockFoodRepo, mockMealRepo)

			meal, err := service.LogMeal(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, meal)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
			assert.Equal(t, tt.wantMsg, appErr.Message())
		})
	}
}

func TestMealLogService_LogMeal_FoodNotFound(t *testing.T) {
	mockFoodRepo := mockRepo.NewMockFoodRepository(t)
	mockMealRepo := mockRepo.NewMockMealRepository(t)
	service := NewMealLogService(mockFoodRepo, mockMealRepo)

	ctx := context.Background()
	foodID := uuid.New()

	// No meal insert may happen when the food is absent.
	mockFoodRepo.EXPECT().
		FindFoodByID(ctx, foodID).
		Return(nil, repository.ErrFoodNotFound)

	meal, err := service.LogMeal(ctx, usecase.LogMealInput{
		FoodID:      foodID.String(),
		MealTime:    "dinner",
		ServingSize: "1",
		Date:        "2026-08-28",
	})
	assert.Nil(t, meal)
	require.ErrorIs(t, err, domainerrors.ErrFoodNotFound)
}

func TestMealLogService_LogMeal_StoreError(t *testing.T) {
	mockFoodRepo := mockRepo.NewMockFoodRepository(t)
	mockMealRepo := mockRepo.NewMockMealRepository(t)
	service := NewMealLogService(mockFoodRepo, mockMealRepo)

	ctx := context.Background()
	foodID := uuid.New()
	food := &entity.Food{ID: foodID, Name: "Eggs", Calories: 140, Protein: 12, Icon: "🥚"}

	mockFoodRepo.EXPECT().
		FindFoodByID(ctx, foodID).
		Return(food, nil)

	mockMealRepo.EXPECT().
		CreateMeal(ctx, mock.AnythingOfType("*entity.Meal")).
		Return(errors.New("db error"))

	meal, err := service.LogMeal(ctx, usecase.LogMealInput{
		FoodID:      foodID.String(),
		MealTime:    "breakfast",
		ServingSize: "1",
		Date:        "2026-08-28",
	})
	assert.Nil(t, meal)
	assert.Error(t, err)
}

func TestMealLogService_DeleteMeal(t *testing.T) {
	mockFoodRepo := mockRepo.NewMockFoodRepository(t)
	mockMealRepo := mockRepo.NewMockMealRepository(t)
	service := NewMealLogService(mockFoodRepo, mockMealRepo)

	ctx := context.Background()
	mealID := uuid.New()

	mockMealRepo.EXPECT().
		DeleteMeal(ctx, mealID).
		Return(nil)

	require.NoError(t, service.DeleteMeal(ctx, mealID))
}

func TestMealLogService_DeleteMeal_StoreError(t *testing.T) {
	mockFoodRepo := mockRepo.NewMockFoodRepository(t)
	mockMealRepo := mockRepo.NewMockMealRepository(t)
	service := NewMealLogService(mockFoodRepo, mockMealRepo)

	ctx := context.Background()
	mealID := uuid.New()

	mockMealRepo.EXPECT().
		DeleteMeal(ctx, mealID).
		Return(errors.New("db error"))

	assert.Error(t, service.DeleteMeal(ctx, mealID))
}
