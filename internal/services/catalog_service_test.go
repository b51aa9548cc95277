package services_test

import (
	"context"
	"errors"
	"testing"

	"mealkit/internal/apperrors"
	"mealkit/internal/models"
	"mealkit/internal/repositories"
	"mealkit/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListRecipes(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults limit", func(t *testing.T) {
		recipes := new(MockRecipeRepository)
		service := services.NewCatalogService(recipes, new(MockCategoryRepository))

		expected := []models.Recipe{{ID: "1", Name: "Chicken Machboos"}}
		recipes.On("ListAvailable", ctx, repositories.RecipeFilter{Limit: services.DefaultRecipeLimit}).Return(expected, nil).Once()

		got, err := service.ListRecipes(ctx, services.RecipeQuery{})
		require.NoError(t, err)
		assert.Equal(t, expected, got)
		recipes.AssertExpectations(t)
	})

	t.Run("Passes filters", func(t *testing.T) {
		recipes := new(MockRecipeRepository)
		service := services.NewCatalogService(recipes, new(MockCategoryRepository))

		want := repositories.RecipeFilter{CategoryID: "cat-1", Difficulty: models.DifficultyHard, Skip: 10, Limit: 5}
		recipes.On("ListAvailable", ctx, want).Return([]models.Recipe{}, nil).Once()

		_, err := service.ListRecipes(ctx, services.RecipeQuery{CategoryID: "cat-1", Difficulty: "hard", Skip: 10, Limit: 5})
		require.NoError(t, err)
		recipes.AssertExpectations(t)
	})

	t.Run("Rejects bad input", func(t *testing.T) {
		recipes := new(MockRecipeRepository)
		service := services.NewCatalogService(recipes, new(MockCategoryRepository))

		for _, q := range []services.RecipeQuery{
			{Difficulty: "extreme"},
			{Limit: 101},
			{Limit: -1},
			{Skip: -1},
		} {
			_, err := service.ListRecipes(ctx, q)
			assert.Truef(t, errors.Is(err, apperrors.ErrInvalidInput), "%+v", q)
		}
		recipes.AssertNotCalled(t, "ListAvailable", mock.Anything, mock.Anything)
	})
}

func TestCatalogService_GetRecipePricing(t *testing.T) {
	ctx := context.Background()
	recipes := new(MockRecipeRepository)
	service := services.NewCatalogService(recipes, new(MockCategoryRepository))

	recipe := &models.Recipe{ID: "r1", BasePrice: decimal.RequireFromString("13.50"), IsAvailable: true}
	recipes.On("GetAvailableByID", ctx, "r1").Return(recipe, nil).Once()

	quote, err := service.GetRecipePricing(ctx, "r1", 3)
	require.NoError(t, err)
	assert.Equal(t, "40.50", quote.CalculatedPrice.StringFixed(2))
	assert.Equal(t, 3, quote.NumberOfPeople)

	_, err = service.GetRecipePricing(ctx, "r1", 21)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))

	recipes.On("GetAvailableByID", ctx, "gone").Return(nil, apperrors.NotFound("recipe gone")).Once()
	_, err = service.GetRecipePricing(ctx, "gone", 1)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	recipes.AssertExpectations(t)
}

func TestCatalogService_Categories(t *testing.T) {
	ctx := context.Background()
	recipes := new(MockRecipeRepository)
	categories := new(MockCategoryRepository)
	service := services.NewCatalogService(recipes, categories)

	categories.On("ListActive", ctx).Return([]models.Category{{ID: "c1"}, {ID: "c2"}}, nil).Once()
	list, err := service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	categories.On("GetActiveByID", ctx, "c1").Return(&models.Category{ID: "c1"}, nil).Once()
	recipes.On("ListAvailable", ctx, repositories.RecipeFilter{CategoryID: "c1", Limit: services.MaxRecipeLimit}).
		Return([]models.Recipe{{ID: "r1"}}, nil).Once()
	inCategory, err := service.ListCategoryRecipes(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, inCategory, 1)

	categories.On("GetActiveByID", ctx, "missing").Return(nil, apperrors.NotFound("category missing")).Once()
	_, err = service.ListCategoryRecipes(ctx, "missing")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	categories.AssertExpectations(t)
	recipes.AssertExpectations(t)
}
