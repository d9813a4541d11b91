// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Food is a reusable catalog entry describing a food's base nutrition and
// display icon. Foods are created once and mutated only by favorite toggles.
type Food struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier for the food.
	Name      string    `json:"name"`       // Display name, unique across the catalog (case-sensitive).
	Calories  int       `json:"calories"`   // Base calories per full serving, positive.
	Protein   int       `json:"protein"`    // Base protein grams per full serving, non-negative.
	Icon      string    `json:"icon"`       // 1-2 character display glyph.
	Favorite  bool      `json:"favorite"`   // Whether the food is pinned to the favorites list.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the food was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
