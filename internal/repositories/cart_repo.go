package repositories

import (
	"context"

	"mealkit/internal/models"
)

// CartRepository defines the interface for cart data access. Every method is
// scoped to the owning user.
type CartRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.CartItem, error)
	GetByUserAndRecipe(ctx context.Context, userID, recipeID string) (*models.CartItem, error)
	GetByIDForUser(ctx context.Context, userID, id string) (*models.CartItem, error)
	// Create returns ErrConflict when the user already has a line for the recipe.
	Create(ctx context.Context, item *models.CartItem) error
	UpdatePeople(ctx context.Context, userID, id string, people int) error
	Delete(ctx context.Context, userID, id string) error
	ClearByUser(ctx context.Context, userID string) (int64, error)
}
