// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"nomlog/internal/domain/entity"
	"nomlog/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for food catalog persistence.
var (
	// ErrFoodNotFound is returned when a food is not found.
	ErrFoodNotFound = errors.New("food not found")
	// ErrDuplicateFoodName is returned when a food with the same name already exists.
	ErrDuplicateFoodName = errors.New("food name already exists")
)

// FoodRepository defines the interface for food-catalog database operations.
type FoodRepository interface {
	// CreateFood persists a new catalog entry.
	CreateFood(ctx context.Context, food *entity.Food) error

	// FindFoodByID retrieves a food by its unique ID.
	FindFoodByID(ctx context.Context, id uuid.UUID) (*entity.Food, error)

	// FindFoodByName retrieves a food by its exact, case-sensitive name.
	FindFoodByName(ctx context.Context, name string) (*entity.Food, error)

	// FindFoodsByFavorite retrieves all foods with the given favorite flag,
	// ordered by name ascending.
	FindFoodsByFavorite(ctx context.Context, favorite bool) ([]*entity.Food, error)

	// UpdateFoodFavorite sets the favorite flag of a food. Last write wins.
	UpdateFoodFavorite(ctx context.Context, id uuid.UUID, favorite bool) error
}
