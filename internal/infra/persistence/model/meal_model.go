package model

import (
	"time"

	"github.com/google/uuid"
)

// MealModel is the GORM-specific struct for the 'meals' table.
// Name, icon and macros are copied from the food at logging time, so a meal
// record stays intact when its catalog entry later changes. FoodID is a plain
// reference without a foreign key for the same reason.
type MealModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"not null"`
	Icon        string    `gorm:"not null"`
	Calories    int       `gorm:"not null"`
	Protein     int       `gorm:"not null"`
	ServingSize string    `gorm:"not null"`
	MealTime    string    `gorm:"not null"`
	FoodID      uuid.UUID `gorm:"type:uuid;not null"`
	Date        time.Time `gorm:"not null;index"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MealModel) TableName() string {
	return "meals"
}
