package handler

import (
	"net/http"

	"nomlog/config"
	"nomlog/internal/delivery/http/response"
	"nomlog/internal/domain/entity"
	"nomlog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StatsHandlerParams holds dependencies for StatsHandler, injected by Fx.
type StatsHandlerParams struct {
	fx.In

	StatsUC usecase.StatsUsecase
	Config  *config.Config
}

// StatsHandler holds dependencies for aggregation handlers
type StatsHandler struct {
	statsUC usecase.StatsUsecase
	goals   *config.GoalsConfig
}

// NewStatsHandler is the constructor for StatsHandler
func NewStatsHandler(params StatsHandlerParams) *StatsHandler {
	return &StatsHandler{
		statsUC: params.StatsUC,
		goals:   params.Config.Goals,
	}
}

// TodayStatsResponse carries today's totals alongside the configured daily
// goals so the client can render progress without a second request.
type TodayStatsResponse struct {
	*entity.DailyStats
	GoalCalories int `json:"goal_calories"`
	GoalProtein  int `json:"goal_protein"`
}

// GetTodayStats handles retrieving the aggregation for the current day
func (h *StatsHandler) GetTodayStats(c echo.Context) error {
	stats := h.statsUC.TodayStats(c.Request().Context())

	return response.Success(c, http.StatusOK, TodayStatsResponse{
		DailyStats:   stats,
		GoalCalories: h.goals.Calories,
		GoalProtein:  h.goals.Protein,
	}, "Today's stats retrieved successfully")
}

// GetHistoryStats handles retrieving the per-day aggregation of all meals
func (h *StatsHandler) GetHistoryStats(c echo.Context) error {
	history := h.statsUC.HistoryStats(c.Request().Context())

	return response.Success(c, http.StatusOK, history, "History retrieved successfully")
}
