// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"nomlog/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateFoodInput carries the raw fields of a catalog-creation request.
// Validation happens inside the use case, first violated rule wins.
type CreateFoodInput struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Icon     string `json:"icon"`
}

// FoodCollection groups the catalog into favorites and regular foods,
// each sorted by name ascending.
type FoodCollection struct {
	FavoriteFoods []*entity.Food `json:"favorite_foods"`
	RegularFoods  []*entity.Food `json:"regular_foods"`
}

// CatalogUsecase defines the interface for food catalog management use cases
type CatalogUsecase interface {
	// CreateFood validates the input, rejects duplicate names and inserts a
	// new food with the favorite flag cleared.
	CreateFood(ctx context.Context, input CreateFoodInput) (*entity.Food, error)

	// GetFoods retrieves the whole catalog split into favorites and regular foods.
	GetFoods(ctx context.Context) (*FoodCollection, error)

	// GetFoodByID retrieves a single food by its ID.
	GetFoodByID(ctx context.Context, id uuid.UUID) (*entity.Food, error)

	// SetFavorite sets the favorite flag of a food.
	SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) error
}
