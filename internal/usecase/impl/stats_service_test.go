package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"nomlog/internal/domain/entity"
	mockRepo "nomlog/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsServiceAt(t *testing.T, mealRepo *mockRepo.MockMealRepository, now time.Time) *statsService {
	t.Helper()

	service, ok := NewStatsService(mealRepo, slog.New(slog.NewTextHandler(io.Discard, nil))).(*statsService)
	require.True(t, ok)
	service.now = func() time.Time { return now }

	return service
}

func statsMeal(name string, mealTime entity.MealTime, calories, protein int, date time.Time) *entity.Meal {
	return &entity.Meal{
		ID:       uuid.New(),
		Name:     name,
		Calories: calories,
		Protein:  protein,
		MealTime: mealTime,
		Date:     date,
	}
}

func TestStatsService_TodayStats(t *testing.T) {
	mockMealRepo := mockRepo.NewMockMealRepository(t)
	// 14:30 UTC on 2026-08-28; the window must still span the whole UTC day.
	now := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)
	service := newStatsServiceAt(t, mockMealRepo, now)

	ctx := context.Background()
	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	meals := []*entity.Meal{
		statsMeal("Chicken Breast", entity.MealTimeLunch, 83, 16, today),
		statsMeal("Oatmeal", entity.MealTimeBreakfast, 300, 8, today),
	}

	mockMealRepo.EXPECT().
		FindMealsBetween(ctx, today, today.Add(24*time.Hour)).
		Return(meals, nil)

	stats := service.TodayStats(ctx)
	require.NotNil(t, stats)
	assert.Equal(t, "2026-08-28", stats.Date)
	assert.Equal(t, 383, stats.TotalCalories)
	assert.Equal(t, 24, stats.TotalProtein)
	require.Len(t, stats.Meals, 2)
	assert.Equal(t, "Oatmeal", stats.Meals[0].Name)
	assert.Equal(t, "Chicken Breast", stats.Meals[1].Name)
}

func TestStatsService_TodayStats_WindowBoundaries(t *testing.T) {
	mockMealRepo := mockRepo.NewMockMealRepository(t)
	now := time.Date(2026, 8, 28, 0, 0, 1, 0, time.UTC)
	service := newStatsServiceAt(t, mockMealRepo, now)

	ctx := context.Background()

	// The half-open window starts at today's midnight UTC: a meal stored at
	// 23:59:59 yesterday is excluded, one at 00:00:00 today is included.
	var gotFrom, gotTo time.Time
	mockMealRepo.EXPECT().
		FindMealsBetween(ctx, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)).
		Run(func(_ context.Context, from, to time.Time) {
			gotFrom, gotTo = from, to
		}).
		Return([]*entity.Meal{}, nil)

	stats := service.TodayStats(ctx)
	require.NotNil(t, stats)

	yesterdayLate := time.Date(2026, 8, 27, 23, 59, 59, 0, time.UTC)
	todayMidnight := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	assert.True(t, yesterdayLate.Before(gotFrom))
	assert.False(t, todayMidnight.Before(gotFrom))
	assert.True(t, todayMidnight.Before(gotTo))
}

func TestStatsService_TodayStats_FailSoft(t *testing.T) {
	mockMealRepo := mockRepo.NewMockMealRepository(t)
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	service := newStatsServiceAt(t, mockMealRepo, now)

	ctx := context.Background()

	mockMealRepo.EXPECT().
		FindMealsBetween(ctx, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)).
		Return(nil, errors.New("db error"))

	// A read failure yields an empty dashboard, never an error.
	stats := service.TodayStats(ctx)
	require.NotNil(t, stats)
	assert.Equal(t, "2026-08-28", stats.Date)
	assert.Equal(t, 0, stats.TotalCalories)
	assert.Equal(t, 0, stats.TotalProtein)
	assert.Empty(t, stats.Meals)
}

func TestStatsService_HistoryStats(t *testing.T) {
	mockMealRepo := mockRepo.NewMockMealRepository(t)
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	service := newStatsServiceAt(t, mockMealRepo, now)

	ctx := context.Background()
	day1 := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	mockMealRepo.EXPECT().
		FindAllMeals(ctx).
		Return([]*entity.Meal{
			statsMeal("Eggs", entity.MealTimeBreakfast, 140, 12, day1),
			statsMeal("Chicken Breast", entity.MealTimeLunch, 83, 16, day3),
			statsMeal("Yogurt", entity.MealTimeSnack, 120, 10, day2),
			statsMeal("Rice", entity.MealTimeDinner, 200, 4, day2),
		}, nil)

	history := service.HistoryStats(ctx)
	require.Len(t, history, 3)

	// Newest day first.
	assert.Equal(t, "2026-08-28", history[0].Date)
	assert.Equal(t, "2026-08-27", history[1].Date)
	assert.Equal(t, "2026-08-26", history[2].Date)

	assert.Equal(t, 83, history[0].TotalCalories)
	assert.Equal(t, 320, history[1].TotalCalories)
	assert.Equal(t, 14, history[1].TotalProtein)
	assert.Equal(t, 140, history[2].TotalCalories)

	// Within a day, the fixed slot order applies.
	require.Len(t, history[1].Meals, 2)
	assert.Equal(t, "Rice", history[1].Meals[0].Name)
	assert.Equal(t, "Yogurt", history[1].Meals[1].Name)
}

func TestStatsService_HistoryStats_AdjacentDaysStaySeparate(t *testing.T) {
	mockMealRepo := mockRepo.NewMockMealRepository(t)
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	service := newStatsServiceAt(t, mockMealRepo, now)

	ctx := context.Background()

	// Records a second apart across midnight must land in different groups.
	mockMealRepo.EXPECT().
		FindAllMeals(ctx).
		Return([]*entity.Meal{
			statsMeal("Late Snack", entity.MealTimeSnack, 100, 2, time.Date(2026, 8, 27, 23, 59, 59, 0, time.UTC)),
			statsMeal("Early Eggs", entity.MealTimeBreakfast, 140, 12, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)),
		}, nil)

	history := service.HistoryStats(ctx)
	require.Len(t, history, 2)
	assert.Equal(t, "2026-08-28", history[0].Date)
	assert.Equal(t, 140, history[0].TotalCalories)
	assert.Equal(t, "2026-08-27", history[1].Date)
	assert.Equal(t, 100, history[1].TotalCalories)
}

func TestStatsService_HistoryStats_FailSoft(t *testing.T) {
	mockMealRepo := mockRepo.NewMockMealRepository(t)
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	service := newStatsServiceAt(t, mockMealRepo, now)

	ctx := context.Background()

	mockMealRepo.EXPECT().
		FindAllMeals(ctx).
		Return(nil, errors.New("db error"))

	history := service.HistoryStats(ctx)
	require.NotNil(t, history)
	assert.Empty(t, history)
}
