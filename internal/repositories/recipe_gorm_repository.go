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

// GORMRecipeRepository is a GORM implementation of RecipeRepository.
type GORMRecipeRepository struct {
	db *gorm.DB
}

// NewGORMRecipeRepository creates a new instance of GORMRecipeRepository.
func NewGORMRecipeRepository(db *gorm.DB) *GORMRecipeRepository {
	return &GORMRecipeRepository{
		db: db,
	}
}

// ListAvailable returns available recipes ordered by name.
func (r *GORMRecipeRepository) ListAvailable(ctx context.Context, filter RecipeFilter) ([]models.Recipe, error) {
	q := conn(ctx, r.db).Preload("Category").Where("is_available = ?", true)
	if filter.CategoryID != "" {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Difficulty != "" {
		q = q.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var recipes []models.Recipe
	if err := q.Order("name ASC").Offset(filter.Skip).Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// GetByID retrieves a recipe regardless of availability.
func (r *GORMRecipeRepository) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := conn(ctx, r.db).Preload("Category").First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("recipe with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get recipe by ID %s: %w", id, err)
	}
	return &recipe, nil
}

// GetAvailableByID retrieves an available recipe.
func (r *GORMRecipeRepository) GetAvailableByID(ctx context.Context, id string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := conn(ctx, r.db).Preload("Category").
		Where("id = ? AND is_available = ?", id, true).
		First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("recipe with ID %s not found or not available", id)
		}
		return nil, fmt.Errorf("failed to get recipe by ID %s: %w", id, err)
	}
	return &recipe, nil
}

// Create creates a new recipe in the database.
func (r *GORMRecipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	if err := conn(ctx, r.db).Omit("Category").Create(recipe).Error; err != nil {
		return fmt.Errorf("failed to create recipe: %w", err)
	}
	return nil
}

// Update saves every column of an existing recipe.
func (r *GORMRecipeRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	res := conn(ctx, r.db).Model(&models.Recipe{}).Where("id = ?", recipe.ID).Select("*").Omit("id", "created_at", "Category").Updates(recipe)
	if res.Error != nil {
		return fmt.Errorf("failed to update recipe: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("recipe with ID %s not found for update", recipe.ID)
	}
	return nil
}

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

// ListActive returns active categories by display order.
func (r *GORMCategoryRepository) ListActive(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := conn(ctx, r.db).Where("is_active = ?", true).Order("display_order ASC").Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetActiveByID retrieves an active category.
func (r *GORMCategoryRepository) GetActiveByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := conn(ctx, r.db).Where("id = ? AND is_active = ?", id, true).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("category with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get category by ID %s: %w", id, err)
	}
	return &category, nil
}

// Create creates a new category.
func (r *GORMCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := conn(ctx, r.db).Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}
