package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"nomlog/config"
	"nomlog/internal/domain/entity"
	mockRepo "nomlog/internal/mocks/repository"
	"nomlog/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStatsHandler(mealRepo *mockRepo.MockMealRepository) *StatsHandler {
	return &StatsHandler{
		statsUC: impl.NewStatsService(mealRepo, slog.New(slog.NewTextHandler(io.Discard, nil))),
		goals:   &config.GoalsConfig{Calories: 2000, Protein: 150},
	}
}

func TestStatsHandler_GetTodayStats(t *testing.T) {
	mockMealRepo := mockRepo.NewMockMealRepository(t)
	handler := newStatsHandler(mockMealRepo)

	mockMealRepo.EXPECT().
		FindMealsBetween(mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]*entity.Meal{
			{ID: uuid.New(), Name: "Oatmeal", Calories: 300, Protein: 8, MealTime: entity.MealTimeBreakfast, Date: time.Now().UTC().Truncate(24 * time.Hour)},
		}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/stats/today", "")

	require.NoError(t, handler.GetTodayStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Contains(t, rec.Body.String(), `"total_calories":300`)
	assert.Contains(t, rec.Body.String(), `"goal_calories":2000`)
	assert.Contains(t, rec.Body.String(), `"goal_protein":150`)
}

func TestStatsHandler_GetTodayStats_StoreFailureStaysOK(t *testing.T) {
	mockMealRepo := mockRepo.NewMockMealRepository(t)
	handler := newStatsHandler(mockMealRepo)

	mockMealRepo.EXPECT().
		FindMealsBetween(mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, errors.New("db error"))

	c, rec := newJSONContext(t, http.MethodGet, "/stats/today", "")

	require.NoError(t, handler.GetTodayStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_calories":0`)
}

func TestStatsHandler_GetHistoryStats(t *testing.T) {
	mockMealRepo := mockRepo.NewMockMealRepository(t)
	handler := newStatsHandler(mockMealRepo)

	day := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	mockMealRepo.EXPECT().
		FindAllMeals(mock.Anything).
		Return([]*entity.Meal{
			{ID: uuid.New(), Name: "Rice", Calories: 200, Protein: 4, MealTime: entity.MealTimeDinner, Date: day},
		}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/stats/history", "")

	require.NoError(t, handler.GetHistoryStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"date":"2026-08-27"`)
}
