// Package model contains the GORM-specific structs mapped to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// FoodModel is the GORM-specific struct for the 'foods' table.
// It represents a reusable catalog entry with its nutrition facts.
type FoodModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"not null;uniqueIndex"`
	Calories  int       `gorm:"not null"`
	Protein   int       `gorm:"not null"`
	Icon      string    `gorm:"not null"`
	Favorite  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodModel) TableName() string {
	return "foods"
}
