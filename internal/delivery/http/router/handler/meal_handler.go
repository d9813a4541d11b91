package handler

import (
	"log/slog"
	"net/http"

	"nomlog/internal/delivery/http/response"
	"nomlog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MealHandlerParams holds dependencies for MealHandler, injected by Fx.
type MealHandlerParams struct {
	fx.In

	MealLogUC usecase.MealLogUsecase
	Logger    *slog.Logger
}

// MealHandler holds dependencies for meal-logging handlers
type MealHandler struct {
	mealLogUC usecase.MealLogUsecase
	logger    *slog.Logger
}

// NewMealHandler is the constructor for MealHandler
func NewMealHandler(params MealHandlerParams) *MealHandler {
	return &MealHandler{
		mealLogUC: params.MealLogUC,
		logger:    params.Logger,
	}
}

// LogMealRequest represents the request body for logging a meal.
// Enum tokens stay raw strings; the use case owns their validation.
type LogMealRequest struct {
	FoodID      string `json:"food_id"`
	MealTime    string `json:"meal_time"`
	ServingSize string `json:"serving_size"`
	Date        string `json:"date"`
}

// LogMeal handles recording a consumed meal
func (h *MealHandler) LogMeal(c echo.Context) error {
	var req LogMealRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal input")
	}

	meal, err := h.mealLogUC.LogMeal(c.Request().Context(), usecase.LogMealInput{
		FoodID:      req.FoodID,
		MealTime:    req.MealTime,
		ServingSize: req.ServingSize,
		Date:        req.Date,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, meal, "Meal logged successfully")
}

// DeleteMeal handles removing a meal record
func (h *MealHandler) DeleteMeal(c echo.Context) error {
	mealID, err := uuid.Parse(c.Param("mealId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid meal ID")
	}

	if err := h.mealLogUC.DeleteMeal(c.Request().Context(), mealID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Meal deleted"}, "Meal deleted successfully")
}
