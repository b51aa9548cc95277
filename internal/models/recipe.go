package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Difficulty is the preparation difficulty of a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Category groups recipes for browsing.
type Category struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name         string    `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,max=100"`
	Description  string    `json:"description" gorm:"type:text"`
	ImageURL     string    `json:"image_url" gorm:"type:varchar(500)"`
	IsActive     bool      `json:"is_active" gorm:"index"`
	DisplayOrder int       `json:"display_order" gorm:"index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Recipe is a meal kit in the catalog. BasePrice is the price for one person.
type Recipe struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CategoryID      string          `json:"category_id" gorm:"type:varchar(36);not null;index"`
	Category        *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Name            string          `json:"name" gorm:"type:varchar(200);not null" validate:"required,max=200"`
	Description     string          `json:"description" gorm:"type:text"`
	BasePrice       decimal.Decimal `json:"base_price" gorm:"type:decimal(10,2);not null;index"`
	PrepTimeMinutes int             `json:"prep_time_minutes"`
	Difficulty      Difficulty      `json:"difficulty" gorm:"type:varchar(20)"`
	ImageURL        string          `json:"image_url" gorm:"type:varchar(500)"`
	IsAvailable     bool            `json:"is_available" gorm:"index"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Orderable reports whether the recipe may be put in a cart or an order.
func (r *Recipe) Orderable() bool {
	return r.IsAvailable && r.BasePrice.IsPositive()
}
