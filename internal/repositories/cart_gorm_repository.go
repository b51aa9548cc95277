package repositories

import (
	"context"
	"errors"
	"fmt"

	"mealkit/internal/apperrors"
	"mealkit/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{db: db}
}

// ListByUser returns the user's cart items with their recipes, oldest first.
func (r *GORMCartRepository) ListByUser(ctx context.Context, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := conn(ctx, r.db).Preload("Recipe").Preload("Recipe.Category").
		Where("user_id = ?", userID).
		Order("created_at ASC").Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items for user %s: %w", userID, err)
	}
	return items, nil
}

// GetByUserAndRecipe returns the user's line for a recipe.
func (r *GORMCartRepository) GetByUserAndRecipe(ctx context.Context, userID, recipeID string) (*models.CartItem, error) {
	var item models.CartItem
	err := conn(ctx, r.db).Where("user_id = ? AND recipe_id = ?", userID, recipeID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("cart item for recipe %s not found", recipeID)
		}
		return nil, fmt.Errorf("failed to get cart item for recipe %s: %w", recipeID, err)
	}
	return &item, nil
}

// GetByIDForUser returns a cart item with its recipe if the user owns it.
func (r *GORMCartRepository) GetByIDForUser(ctx context.Context, userID, id string) (*models.CartItem, error) {
	var item models.CartItem
	err := conn(ctx, r.db).Preload("Recipe").Preload("Recipe.Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("cart item with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get cart item by ID %s: %w", id, err)
	}
	return &item, nil
}

// Create inserts a new cart line.
func (r *GORMCartRepository) Create(ctx context.Context, item *models.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := conn(ctx, r.db).Omit("Recipe").Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("cart item for recipe %s already exists: %w", item.RecipeID, apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to create cart item: %w", err)
	}
	return nil
}

// UpdatePeople replaces the people count of an owned line.
func (r *GORMCartRepository) UpdatePeople(ctx context.Context, userID, id string, people int) error {
	res := conn(ctx, r.db).Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("number_of_people", people)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart item %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("cart item with ID %s not found for update", id)
	}
	return nil
}

// Delete removes an owned line.
func (r *GORMCartRepository) Delete(ctx context.Context, userID, id string) error {
	res := conn(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).Delete(&models.CartItem{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("cart item with ID %s not found for deletion", id)
	}
	return nil
}

// ClearByUser removes all of the user's lines and reports how many were removed.
func (r *GORMCartRepository) ClearByUser(ctx context.Context, userID string) (int64, error) {
	res := conn(ctx, r.db).Where("user_id = ?", userID).Delete(&models.CartItem{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to clear cart for user %s: %w", userID, res.Error)
	}
	return res.RowsAffected, nil
}
