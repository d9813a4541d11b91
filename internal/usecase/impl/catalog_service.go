// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"strings"
	"unicode/utf8"

	"nomlog/internal/domain/entity"
	domainerrors "nomlog/internal/domain/errors"
	"nomlog/internal/domain/repository"
	"nomlog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const maxIconLength = 2

type catalogService struct {
	foodRepo repository.FoodRepository
}

// NewCatalogService creates a new food catalog service instance
func NewCatalogService(foodRepo repository.FoodRepository) usecase.CatalogUsecase {
	return &catalogService{
		foodRepo: foodRepo,
	}
}

// CreateFood validates the input, rejects duplicate names and inserts a new
// food with the favorite flag cleared.
func (s *catalogService) CreateFood(ctx context.Context, input usecase.CreateFoodInput) (*entity.Food, error) {
	name := strings.TrimSpace(input.Name)
	icon := strings.TrimSpace(input.Icon)

	// Rules are checked in a fixed order; the first violation is reported.
	switch {
	case name == "":
		return nil, domainerrors.NewValidationError("Food name is required")
	case input.Calories <= 0:
		return nil, domainerrors.NewValidationError("Calories must be a positive number")
	case input.Protein < 0:
		return nil, domainerrors.NewValidationError("Protein must be 0 or greater")
	case icon == "":
		return nil, domainerrors.NewValidationError("Icon is required")
	case utf8.RuneCountInString(icon) > maxIconLength:
		return nil, domainerrors.NewValidationError("Icon should be 1-2 characters")
	}

	// Case-sensitive exact-name duplicate check before inserting.
	if _, err := s.foodRepo.FindFoodByName(ctx, name); err == nil {
		return nil, domainerrors.ErrDuplicateFood
	} else if !errors.Is(err, repository.ErrFoodNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing food")
	}

	food := &entity.Food{
		ID:       uuid.New(),
		Name:     name,
		Calories: input.Calories,
		Protein:  input.Protein,
		Icon:     icon,
		Favorite: false,
	}

	if err := s.foodRepo.CreateFood(ctx, food); err != nil {
		if errors.Is(err, repository.ErrDuplicateFoodName) {
			return nil, domainerrors.ErrDuplicateFood
		}

		return nil, errors.Wrap(err, "failed to create food")
	}

	return food, nil
}

// GetFoods retrieves the whole catalog split into favorites and regular
// foods, each sorted by name ascending.
func (s *catalogService) GetFoods(ctx context.Context) (*usecase.FoodCollection, error) {
	favorites, err := s.foodRepo.FindFoodsByFavorite(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find favorite foods")
	}

	regular, err := s.foodRepo.FindFoodsByFavorite(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find regular foods")
	}

	return &usecase.FoodCollection{
		FavoriteFoods: favorites,
		RegularFoods:  regular,
	}, nil
}

// GetFoodByID retrieves a single food by its ID.
func (s *catalogService) GetFoodByID(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	food, err := s.foodRepo.FindFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return nil, domainerrors.ErrFoodNotFound
		}

		return nil, errors.Wrap(err, "failed to find food by ID")
	}

	return food, nil
}

// SetFavorite sets the favorite flag of a food. Concurrent toggles both
// succeed with last-write-wins semantics.
func (s *catalogService) SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) error {
	if err := s.foodRepo.UpdateFoodFavorite(ctx, id, favorite); err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return domainerrors.ErrFoodNotFound
		}

		return errors.Wrap(err, "failed to update food favorite")
	}

	return nil
}
