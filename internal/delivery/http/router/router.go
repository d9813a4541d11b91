// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nomlog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FoodHandler  *handler.FoodHandler
	MealHandler  *handler.MealHandler
	StatsHandler *handler.StatsHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	foodHandler  *handler.FoodHandler
	mealHandler  *handler.MealHandler
	statsHandler *handler.StatsHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		foodHandler:  params.FoodHandler,
		mealHandler:  params.MealHandler,
		statsHandler: params.StatsHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog routes
	foodGroup := e.Group("/foods")
	{
		foodGroup.POST("", r.foodHandler.CreateFood)
		foodGroup.GET("", r.foodHandler.GetFoods)
		foodGroup.GET("/:foodId", r.foodHandler.GetFoodByID)
		foodGroup.PATCH("/:foodId/favorite", r.foodHandler.ToggleFavorite)
	}

	// Meal log routes
	mealGroup := e.Group("/meals")
	{
		mealGroup.POST("", r.mealHandler.LogMeal)
		mealGroup.DELETE("/:mealId", r.mealHandler.DeleteMeal)
	}

	// Aggregation routes
	statsGroup := e.Group("/stats")
	{
		statsGroup.GET("/today", r.statsHandler.GetTodayStats)
		statsGroup.GET("/history", r.statsHandler.GetHistoryStats)
	}
}
