// Package handler contains the HTTP handlers of the delivery layer.
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

// FoodHandlerParams holds dependencies for FoodHandler, injected by Fx.
type FoodHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// FoodHandler holds dependencies for catalog-related handlers
type FoodHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewFoodHandler is the constructor for FoodHandler
func NewFoodHandler(params FoodHandlerParams) *FoodHandler {
	return &FoodHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CreateFoodRequest represents the request body for creating a catalog entry
type CreateFoodRequest struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Icon     string `json:"icon"`
}

// ToggleFavoriteRequest represents the request body for setting the favorite flag
type ToggleFavoriteRequest struct {
	Favorite *bool `json:"favorite" validate:"required"`
}

// CreateFood handles adding a new food to the catalog
func (h *FoodHandler) CreateFood(c echo.Context) error {
	var req CreateFoodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food input")
	}

	food, err := h.catalogUC.CreateFood(c.Request().Context(), usecase.CreateFoodInput{
		Name:     req.Name,
		Calories: req.Calories,
		Protein:  req.Protein,
		Icon:     req.Icon,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, food, "Food created successfully")
}

// GetFoods handles retrieving the whole catalog split into favorites and regular foods
func (h *FoodHandler) GetFoods(c echo.Context) error {
	foods, err := h.catalogUC.GetFoods(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, foods, "Foods retrieved successfully")
}

// GetFoodByID handles retrieving a single catalog entry
func (h *FoodHandler) GetFoodByID(c echo.Context) error {
	foodID, err := uuid.Parse(c.Param("foodId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid food ID")
	}

	food, err := h.catalogUC.GetFoodByID(c.Request().Context(), foodID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, food, "Food retrieved successfully")
}

// ToggleFavorite handles setting the favorite flag of a food
func (h *FoodHandler) ToggleFavorite(c echo.Context) error {
	foodID, err := uuid.Parse(c.Param("foodId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid food ID")
	}

	var req ToggleFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.catalogUC.SetFavorite(c.Request().Context(), foodID, *req.Favorite); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"favorite": *req.Favorite}, "Favorite updated successfully")
}
