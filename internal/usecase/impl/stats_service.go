package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"nomlog/internal/domain/entity"
	"nomlog/internal/domain/repository"
	"nomlog/internal/usecase"
)

type statsService struct {
	mealRepo repository.MealRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewStatsService creates a new aggregation service instance
func NewStatsService(mealRepo repository.MealRepository, logger *slog.Logger) usecase.StatsUsecase {
	return &statsService{
		mealRepo: mealRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// TodayStats aggregates all meals whose stored day equals the current UTC
// calendar day. Store errors are swallowed: the dashboard renders an empty
// day instead of an error.
func (s *statsService) TodayStats(ctx context.Context) *entity.DailyStats {
	start := s.now().UTC().Truncate(24 * time.Hour)
	end := start.Add(24 * time.Hour)

	meals, err := s.mealRepo.FindMealsBetween(ctx, start, end)
	if err != nil {
		s.logger.Error("failed to load today's meals", slog.Any("error", err))

		return entity.NewDailyStats(start.Format(entity.DayLayout), nil)
	}

	return entity.NewDailyStats(start.Format(entity.DayLayout), meals)
}

// HistoryStats aggregates all meals grouped by UTC calendar day, newest day
// first. Store errors yield an empty history.
func (s *statsService) HistoryStats(ctx context.Context) []*entity.DailyStats {
	meals, err := s.mealRepo.FindAllMeals(ctx)
	if err != nil {
		s.logger.Error("failed to load meal history", slog.Any("error", err))

		return []*entity.DailyStats{}
	}

	grouped := make(map[string][]*entity.Meal)
	for _, meal := range meals {
		day := meal.Day()
		grouped[day] = append(grouped[day], meal)
	}

	days := make([]string, 0, len(grouped))
	for day := range grouped {
		days = append(days, day)
	}
	// YYYY-MM-DD strings order lexicographically, so a reverse string sort
	// is a descending date sort.
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	history := make([]*entity.DailyStats, 0, len(days))
	for _, day := range days {
		history = append(history, entity.NewDailyStats(day, grouped[day]))
	}

	return history
}
