package services

import (
	"context"
	"errors"
	"fmt"

	"mealkit/internal/apperrors"
	"mealkit/internal/logger"
	"mealkit/internal/metrics"
	"mealkit/internal/models"
	"mealkit/internal/pricing"
	"mealkit/internal/repositories"

	"go.uber.org/zap"
)

// CartService manages per-user carts priced live against the catalog.
type CartService struct {
	carts   repositories.CartRepository
	recipes repositories.RecipeRepository
	metrics *metrics.Metrics
	log     *zap.Logger
}

// NewCartService creates a new CartService. m may be nil.
func NewCartService(carts repositories.CartRepository, recipes repositories.RecipeRepository, m *metrics.Metrics, log *zap.Logger) *CartService {
	return &CartService{
		carts:   carts,
		recipes: recipes,
		metrics: m,
		log:     log,
	}
}

// GetCart returns the user's lines priced at the current catalog price.
func (s *CartService) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart := &models.Cart{Items: make([]models.PricedCartItem, 0, len(items))}
	for _, item := range items {
		priced := priceItem(item)
		cart.Items = append(cart.Items, priced)
		cart.TotalAmount = cart.TotalAmount.Add(priced.CalculatedPrice)
	}
	cart.TotalItems = len(cart.Items)
	return cart, nil
}

// AddItem puts recipeID in the cart for people, replacing the count if the
// recipe is already there.
func (s *CartService) AddItem(ctx context.Context, userID, recipeID string, people int) (*models.PricedCartItem, error) {
	if err := pricing.ValidatePeople(people); err != nil {
		return nil, err
	}
	recipe, err := s.recipes.GetAvailableByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	item, err := s.upsert(ctx, userID, recipeID, people)
	if err != nil {
		return nil, err
	}
	item.Recipe = recipe

	s.metrics.CartMutated("add")
	logger.FromCtx(ctx, s.log).Info("cart item saved",
		zap.String("user_id", userID),
		zap.String("recipe_id", recipeID),
		zap.Int("number_of_people", people),
	)

	priced := priceItem(*item)
	return &priced, nil
}

// upsert updates the existing line or inserts a new one. A concurrent insert
// of the same line surfaces as ErrConflict and is retried as an update.
func (s *CartService) upsert(ctx context.Context, userID, recipeID string, people int) (*models.CartItem, error) {
	existing, err := s.carts.GetByUserAndRecipe(ctx, userID, recipeID)
	switch {
	case err == nil:
		if err := s.carts.UpdatePeople(ctx, userID, existing.ID, people); err != nil {
			return nil, err
		}
		existing.NumberOfPeople = people
		return existing, nil
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, err
	}

	item := &models.CartItem{UserID: userID, RecipeID: recipeID, NumberOfPeople: people}
	err = s.carts.Create(ctx, item)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, apperrors.ErrConflict) {
		return nil, err
	}

	logger.FromCtx(ctx, s.log).Debug("cart insert raced, retrying as update",
		zap.String("user_id", userID),
		zap.String("recipe_id", recipeID),
	)
	existing, err = s.carts.GetByUserAndRecipe(ctx, userID, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload cart item after conflict: %w", err)
	}
	if err := s.carts.UpdatePeople(ctx, userID, existing.ID, people); err != nil {
		return nil, err
	}
	existing.NumberOfPeople = people
	return existing, nil
}

// UpdateItem changes the people count of an owned line.
func (s *CartService) UpdateItem(ctx context.Context, userID, itemID string, people int) (*models.PricedCartItem, error) {
	if err := pricing.ValidatePeople(people); err != nil {
		return nil, err
	}
	if err := s.carts.UpdatePeople(ctx, userID, itemID, people); err != nil {
		return nil, err
	}
	item, err := s.carts.GetByIDForUser(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	s.metrics.CartMutated("update")
	priced := priceItem(*item)
	return &priced, nil
}

// RemoveItem deletes an owned line.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) error {
	if err := s.carts.Delete(ctx, userID, itemID); err != nil {
		return err
	}
	s.metrics.CartMutated("remove")
	return nil
}

// Clear empties the cart and returns the number of lines removed.
func (s *CartService) Clear(ctx context.Context, userID string) (int64, error) {
	n, err := s.carts.ClearByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	s.metrics.CartMutated("clear")
	logger.FromCtx(ctx, s.log).Info("cart cleared", zap.String("user_id", userID), zap.Int64("removed", n))
	return n, nil
}

func priceItem(item models.CartItem) models.PricedCartItem {
	priced := models.PricedCartItem{CartItem: item}
	if item.Recipe != nil {
		priced.CalculatedPrice = pricing.LineTotal(item.Recipe.BasePrice, item.NumberOfPeople)
	}
	return priced
}
