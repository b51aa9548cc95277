package repositories

import (
	"context"

	"mealkit/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Create inserts the order and all of its items.
	Create(ctx context.Context, order *models.Order) error
	GetByIDForUser(ctx context.Context, userID, id string) (*models.Order, error)
	ListByUser(ctx context.Context, userID string, skip, limit int) ([]models.OrderSummary, error)
	// CompareAndSetStatus moves the order from one status to another only if
	// the stored status still equals from. It reports whether a row changed.
	CompareAndSetStatus(ctx context.Context, id string, from, to models.OrderStatus) (bool, error)
}
