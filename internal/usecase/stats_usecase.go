package usecase

import (
	"context"

	"nomlog/internal/domain/entity"
)

// StatsUsecase defines the read-side aggregation use cases. Both operations
// fail soft: a store error yields an empty result instead of propagating, so
// a transient read failure renders an empty dashboard rather than an error.
type StatsUsecase interface {
	// TodayStats aggregates all meals whose stored day equals the current
	// UTC calendar day.
	TodayStats(ctx context.Context) *entity.DailyStats

	// HistoryStats aggregates all meals grouped by calendar day, newest day
	// first.
	HistoryStats(ctx context.Context) []*entity.DailyStats
}
