package services

import (
	"context"

	"mealkit/internal/apperrors"
	"mealkit/internal/models"
	"mealkit/internal/pricing"
	"mealkit/internal/repositories"

	"github.com/shopspring/decimal"
)

const (
	DefaultRecipeLimit = 100
	MaxRecipeLimit     = 100
)

// RecipeQuery is the caller-supplied recipe listing filter.
type RecipeQuery struct {
	CategoryID string
	Difficulty string
	Skip       int
	Limit      int
}

// RecipePricing is a recipe quoted for a number of people at the current price.
type RecipePricing struct {
	Recipe          *models.Recipe
	NumberOfPeople  int
	CalculatedPrice decimal.Decimal
}

// CatalogService handles read access to categories and recipes.
type CatalogService struct {
	recipes    repositories.RecipeRepository
	categories repositories.CategoryRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(recipes repositories.RecipeRepository, categories repositories.CategoryRepository) *CatalogService {
	return &CatalogService{
		recipes:    recipes,
		categories: categories,
	}
}

// ListRecipes returns available recipes matching q.
func (s *CatalogService) ListRecipes(ctx context.Context, q RecipeQuery) ([]models.Recipe, error) {
	filter, err := recipeFilter(q)
	if err != nil {
		return nil, err
	}
	return s.recipes.ListAvailable(ctx, filter)
}

// GetRecipe returns an available recipe.
func (s *CatalogService) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	return s.recipes.GetAvailableByID(ctx, id)
}

// GetRecipePricing quotes an available recipe for people.
func (s *CatalogService) GetRecipePricing(ctx context.Context, id string, people int) (*RecipePricing, error) {
	if err := pricing.ValidatePeople(people); err != nil {
		return nil, err
	}
	recipe, err := s.recipes.GetAvailableByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &RecipePricing{
		Recipe:          recipe,
		NumberOfPeople:  people,
		CalculatedPrice: pricing.LineTotal(recipe.BasePrice, people),
	}, nil
}

// ListCategories returns active categories in display order.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.ListActive(ctx)
}

// GetCategory returns an active category.
func (s *CatalogService) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	return s.categories.GetActiveByID(ctx, id)
}

// ListCategoryRecipes returns the available recipes of an active category.
func (s *CatalogService) ListCategoryRecipes(ctx context.Context, categoryID string) ([]models.Recipe, error) {
	if _, err := s.categories.GetActiveByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.recipes.ListAvailable(ctx, repositories.RecipeFilter{CategoryID: categoryID, Limit: MaxRecipeLimit})
}

func recipeFilter(q RecipeQuery) (repositories.RecipeFilter, error) {
	if q.Skip < 0 {
		return repositories.RecipeFilter{}, apperrors.InvalidInput("skip must not be negative, got %d", q.Skip)
	}
	limit := q.Limit
	if limit == 0 {
		limit = DefaultRecipeLimit
	}
	if limit < 1 || limit > MaxRecipeLimit {
		return repositories.RecipeFilter{}, apperrors.InvalidInput("limit must be between 1 and %d, got %d", MaxRecipeLimit, q.Limit)
	}

	difficulty := models.Difficulty(q.Difficulty)
	if difficulty != "" && !difficulty.Valid() {
		return repositories.RecipeFilter{}, apperrors.InvalidInput("difficulty must be easy, medium or hard, got %q", q.Difficulty)
	}

	return repositories.RecipeFilter{
		CategoryID: q.CategoryID,
		Difficulty: difficulty,
		Skip:       q.Skip,
		Limit:      limit,
	}, nil
}
