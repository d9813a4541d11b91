package postgres

import (
	"context"
	"time"

	"nomlog/internal/domain/entity"
	domainerrors "nomlog/internal/domain/errors"
	"nomlog/internal/domain/repository"
	"nomlog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// mealRepository implements the repository.MealRepository interface.
type mealRepository struct {
	db *gorm.DB
}

// NewMealRepository is the constructor for mealRepository.
func NewMealRepository(db *gorm.DB) repository.MealRepository {
	return &mealRepository{
		db: db,
	}
}

// CreateMeal persists a new consumption record.
func (repo *mealRepository) CreateMeal(ctx context.Context, meal *entity.Meal) error {
	mealM := fromMealDomain(meal)

	if err := repo.db.WithContext(ctx).Create(mealM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required meal information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create meal")
	}

	// Update the entity with generated values
	meal.ID = mealM.ID
	meal.CreatedAt = mealM.CreatedAt

	return nil
}

// DeleteMeal removes a meal record by ID. RowsAffected is deliberately not
// checked: deleting an already-deleted record is still a success.
func (repo *mealRepository) DeleteMeal(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MealModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete meal")
	}

	return nil
}

// FindMealsBetween retrieves all meals whose stored date falls within the
// half-open window [from, to).
func (repo *mealRepository) FindMealsBetween(ctx context.Context, from, to time.Time) ([]*entity.Meal, error) {
	var mealModels []*model.MealModel

	if err := repo.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Order("created_at ASC").
		Find(&mealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find meals between dates")
	}

	return toMealDomains(mealModels), nil
}

// FindAllMeals retrieves every meal record, newest date first.
func (repo *mealRepository) FindAllMeals(ctx context.Context) ([]*entity.Meal, error) {
	var mealModels []*model.MealModel

	if err := repo.db.WithContext(ctx).
		Order("date DESC, created_at ASC").
		Find(&mealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all meals")
	}

	return toMealDomains(mealModels), nil
}

// --- Mapper Functions ---

func toMealDomains(mealModels []*model.MealModel) []*entity.Meal {
	meals := make([]*entity.Meal, 0, len(mealModels))
	for _, mealM := range mealModels {
		meals = append(meals, toMealDomain(mealM))
	}

	return meals
}

// toMealDomain converts a GORM MealModel to a domain Meal entity.
func toMealDomain(data *model.MealModel) *entity.Meal {
	if data == nil {
		return nil
	}

	return &entity.Meal{
		ID:          data.ID,
		Name:        data.Name,
		Icon:        data.Icon,
		Calories:    data.Calories,
		Protein:     data.Protein,
		ServingSize: entity.ServingSize(data.ServingSize),
		MealTime:    entity.MealTime(data.MealTime),
		FoodID:      data.FoodID,
		Date:        data.Date,
		CreatedAt:   data.CreatedAt,
	}
}

// fromMealDomain converts a domain Meal entity to a GORM MealModel.
func fromMealDomain(data *entity.Meal) *model.MealModel {
	if data == nil {
		return nil
	}

	return &model.MealModel{
		ID:          data.ID,
		Name:        data.Name,
		Icon:        data.Icon,
		Calories:    data.Calories,
		Protein:     data.Protein,
		ServingSize: string(data.ServingSize),
		MealTime:    string(data.MealTime),
		FoodID:      data.FoodID,
		Date:        data.Date,
		CreatedAt:   data.CreatedAt,
	}
}
