// Package dbtest opens isolated in-memory SQLite databases for tests.
package dbtest

import (
	"fmt"
	"testing"

	"mealkit/internal/database"
	"mealkit/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DSN returns a private shared-cache in-memory SQLite DSN.
func DSN() string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
}

// Open returns a migrated database that lives until the test ends. A single
// connection is used so SQLite never reports a locked table.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open("sqlite", DSN())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// SeedCategory inserts an active category.
func SeedCategory(t testing.TB, db *gorm.DB, name string, order int) models.Category {
	t.Helper()

	c := models.Category{
		ID:           uuid.New().String(),
		Name:         name,
		IsActive:     true,
		DisplayOrder: order,
	}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed category %s: %v", name, err)
	}
	return c
}

// SeedRecipe inserts a recipe priced at price in a fresh category.
func SeedRecipe(t testing.TB, db *gorm.DB, name, price string, available bool) models.Recipe {
	t.Helper()

	c := SeedCategory(t, db, name+" category", 1)
	r := models.Recipe{
		ID:          uuid.New().String(),
		CategoryID:  c.ID,
		Name:        name,
		BasePrice:   decimal.RequireFromString(price),
		Difficulty:  models.DifficultyEasy,
		IsAvailable: available,
	}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("seed recipe %s: %v", name, err)
	}
	return r
}

// SeedUser inserts an active user.
func SeedUser(t testing.TB, db *gorm.DB, name string) models.User {
	t.Helper()

	u := models.User{
		ID:       uuid.New().String(),
		Name:     name,
		Email:    name + "@example.com",
		IsActive: true,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user %s: %v", name, err)
	}
	return u
}
