package database

import (
	"context"
	"errors"
	"fmt"

	"mealkit/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type seedRecipe struct {
	name       string
	category   string
	price      string
	prep       int
	difficulty models.Difficulty
	desc       string
}

var seedCategories = []models.Category{
	{Name: "Arabic Cuisine", Description: "Traditional Middle Eastern and Bahraini dishes", DisplayOrder: 1},
	{Name: "Asian Cuisine", Description: "Japanese, Chinese, Thai and Indian dishes", DisplayOrder: 2},
	{Name: "Italian Cuisine", Description: "Classic Italian recipes with fresh ingredients", DisplayOrder: 3},
	{Name: "Healthy Options", Description: "Nutritious and balanced meals", DisplayOrder: 4},
}

var seedRecipes = []seedRecipe{
	{"Chicken Machboos", "Arabic Cuisine", "8.50", 45, models.DifficultyMedium, "Spiced rice with tender chicken"},
	{"Lamb Kabsa", "Arabic Cuisine", "12.00", 60, models.DifficultyHard, "Slow-cooked lamb over fragrant rice"},
	{"Hummus with Falafel", "Arabic Cuisine", "6.75", 30, models.DifficultyEasy, "Chickpea dip with crispy falafel"},
	{"Chicken Teriyaki", "Asian Cuisine", "9.00", 30, models.DifficultyEasy, "Glazed chicken with steamed rice"},
	{"Thai Green Curry", "Asian Cuisine", "10.25", 35, models.DifficultyMedium, "Coconut curry with vegetables"},
	{"Beef Stir Fry", "Asian Cuisine", "11.50", 20, models.DifficultyEasy, "Wok-fried beef and greens"},
	{"Spaghetti Carbonara", "Italian Cuisine", "7.50", 25, models.DifficultyMedium, "Egg, cheese and pancetta pasta"},
	{"Margherita Pizza", "Italian Cuisine", "9.75", 40, models.DifficultyMedium, "Tomato, mozzarella and basil"},
	{"Chicken Parmigiana", "Italian Cuisine", "11.25", 35, models.DifficultyMedium, "Breaded chicken with marinara"},
	{"Grilled Salmon Bowl", "Healthy Options", "13.50", 25, models.DifficultyEasy, "Salmon over quinoa and greens"},
	{"Mediterranean Chickpea Salad", "Healthy Options", "8.25", 15, models.DifficultyEasy, "Chickpeas, feta and vegetables"},
}

// SeedCatalog inserts the starter categories and recipes. Existing rows,
// matched by name, are left untouched.
func SeedCatalog(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := make(map[string]string, len(seedCategories))

		for _, c := range seedCategories {
			var existing models.Category
			err := tx.Where("name = ?", c.Name).First(&existing).Error
			switch {
			case err == nil:
				ids[c.Name] = existing.ID
				continue
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return fmt.Errorf("failed to look up category %s: %w", c.Name, err)
			}

			c.ID = uuid.New().String()
			c.IsActive = true
			if err := tx.Create(&c).Error; err != nil {
				return fmt.Errorf("failed to seed category %s: %w", c.Name, err)
			}
			ids[c.Name] = c.ID
		}

		for _, r := range seedRecipes {
			var count int64
			if err := tx.Model(&models.Recipe{}).Where("name = ?", r.name).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to look up recipe %s: %w", r.name, err)
			}
			if count > 0 {
				continue
			}

			recipe := models.Recipe{
				ID:              uuid.New().String(),
				CategoryID:      ids[r.category],
				Name:            r.name,
				Description:     r.desc,
				BasePrice:       decimal.RequireFromString(r.price),
				PrepTimeMinutes: r.prep,
				Difficulty:      r.difficulty,
				IsAvailable:     true,
			}
			if err := tx.Create(&recipe).Error; err != nil {
				return fmt.Errorf("failed to seed recipe %s: %w", r.name, err)
			}
		}
		return nil
	})
}
