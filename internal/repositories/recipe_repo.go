package repositories

import (
	"context"

	"mealkit/internal/models"
)

// RecipeFilter narrows a catalog listing.
type RecipeFilter struct {
	CategoryID string
	Difficulty models.Difficulty
	Skip       int
	Limit      int
}

// RecipeRepository defines the interface for recipe data access.
type RecipeRepository interface {
	ListAvailable(ctx context.Context, filter RecipeFilter) ([]models.Recipe, error)
	GetByID(ctx context.Context, id string) (*models.Recipe, error)
	// GetAvailableByID returns ErrNotFound for missing and unavailable recipes.
	GetAvailableByID(ctx context.Context, id string) (*models.Recipe, error)
	Create(ctx context.Context, recipe *models.Recipe) error
	Update(ctx context.Context, recipe *models.Recipe) error
}

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	ListActive(ctx context.Context) ([]models.Category, error)
	GetActiveByID(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
}
