// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"nomlog/internal/domain/entity"
	domainerrors "nomlog/internal/domain/errors"
	"nomlog/internal/domain/repository"
	"nomlog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// foodRepository implements the repository.FoodRepository interface.
type foodRepository struct {
	db *gorm.DB
}

// NewFoodRepository is the constructor for foodRepository.
func NewFoodRepository(db *gorm.DB) repository.FoodRepository {
	return &foodRepository{
		db: db,
	}
}

// CreateFood persists a new catalog entry.
func (repo *foodRepository) CreateFood(ctx context.Context, food *entity.Food) error {
	foodM := fromFoodDomain(food)

	if err := repo.db.WithContext(ctx).Create(foodM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFoodName
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required food information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create food")
	}

	// Update the entity with generated values
	food.ID = foodM.ID
	food.CreatedAt = foodM.CreatedAt
	food.UpdatedAt = foodM.UpdatedAt

	return nil
}

// FindFoodByID retrieves a food by its unique ID.
func (repo *foodRepository) FindFoodByID(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	var foodM model.FoodModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&foodM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodNotFound
		}

		return nil, errors.Wrap(err, "failed to find food by ID")
	}

	return toFoodDomain(&foodM), nil
}

// FindFoodByName retrieves a food by its exact, case-sensitive name.
func (repo *foodRepository) FindFoodByName(ctx context.Context, name string) (*entity.Food, error) {
	var foodM model.FoodModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&foodM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodNotFound
		}

		return nil, errors.Wrap(err, "failed to find food by name")
	}

	return toFoodDomain(&foodM), nil
}

// FindFoodsByFavorite retrieves all foods with the given favorite flag, ordered by name ascending.
func (repo *foodRepository) FindFoodsByFavorite(ctx context.Context, favorite bool) ([]*entity.Food, error) {
	var foodModels []*model.FoodModel

	if err := repo.db.WithContext(ctx).
		Where("favorite = ?", favorite).
		Order("name ASC").
		Find(&foodModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find foods by favorite")
	}

	foods := make([]*entity.Food, 0, len(foodModels))
	for _, foodM := range foodModels {
		foods = append(foods, toFoodDomain(foodM))
	}

	return foods, nil
}

// UpdateFoodFavorite sets the favorite flag of a food. Last write wins.
func (repo *foodRepository) UpdateFoodFavorite(ctx context.Context, id uuid.UUID, favorite bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FoodModel{}).
		Where("id = ?", id).
		Update("favorite", favorite)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update food favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFoodNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toFoodDomain converts a GORM FoodModel to a domain Food entity.
func toFoodDomain(data *model.FoodModel) *entity.Food {
	if data == nil {
		return nil
	}

	return &entity.Food{
		ID:        data.ID,
		Name:      data.Name,
		Calories:  data.Calories,
		Protein:   data.Protein,
		Icon:      data.Icon,
		Favorite:  data.Favorite,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromFoodDomain converts a domain Food entity to a GORM FoodModel.
func fromFoodDomain(data *entity.Food) *model.FoodModel {
	if data == nil {
		return nil
	}

	return &model.FoodModel{
		ID:        data.ID,
		Name:      data.Name,
		Calories:  data.Calories,
		Protein:   data.Protein,
		Icon:      data.Icon,
		Favorite:  data.Favorite,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
