package database

import (
	"context"
	"testing"

	"mealkit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open("oracle", "")
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestMigrateAndSeed(t *testing.T) {
	db, err := Open("sqlite", "file:seedtest?mode=memory&cache=shared")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()
	require.NoError(t, Migrate(db))
	require.NoError(t, Ping(db))

	require.NoError(t, SeedCatalog(context.Background(), db))
	// Seeding twice must not duplicate rows.
	require.NoError(t, SeedCatalog(context.Background(), db))

	var categories, recipes int64
	require.NoError(t, db.Model(&models.Category{}).Count(&categories).Error)
	require.NoError(t, db.Model(&models.Recipe{}).Count(&recipes).Error)
	assert.EqualValues(t, len(seedCategories), categories)
	assert.EqualValues(t, len(seedRecipes), recipes)

	var machboos models.Recipe
	require.NoError(t, db.Where("name = ?", "Chicken Machboos").First(&machboos).Error)
	assert.Equal(t, "8.50", machboos.BasePrice.StringFixed(2))
	assert.True(t, machboos.IsAvailable)
	assert.NotEmpty(t, machboos.CategoryID)
}
