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

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{db: db}
}

// Create inserts the order and its items in one transaction.
func (r *GORMOrderRepository) Create(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
		order.Items[i].Position = i
	}

	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(order).Error; err != nil {
			return err
		}
		if len(order.Items) == 0 {
			return nil
		}
		return tx.Omit("Recipe").Create(&order.Items).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByIDForUser loads an owned order with its items in creation order.
func (r *GORMOrderRepository) GetByIDForUser(ctx context.Context, userID, id string) (*models.Order, error) {
	var order models.Order
	err := conn(ctx, r.db).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Items.Recipe").
		Where("id = ? AND user_id = ?", id, userID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("order with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// ListByUser returns order summaries, newest first.
func (r *GORMOrderRepository) ListByUser(ctx context.Context, userID string, skip, limit int) ([]models.OrderSummary, error) {
	var orders []models.Order
	err := conn(ctx, r.db).
		Select("id", "total_amount", "status", "order_date").
		Where("user_id = ?", userID).
		Order("order_date DESC").Order("id DESC").
		Offset(skip).Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for user %s: %w", userID, err)
	}

	summaries := make([]models.OrderSummary, 0, len(orders))
	if len(orders) == 0 {
		return summaries, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	var counts []struct {
		OrderID string
		Items   int
	}
	err = conn(ctx, r.db).Model(&models.OrderItem{}).
		Select("order_id, COUNT(*) AS items").
		Where("order_id IN ?", ids).
		Group("order_id").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count order items for user %s: %w", userID, err)
	}
	byOrder := make(map[string]int, len(counts))
	for _, c := range counts {
		byOrder[c.OrderID] = c.Items
	}

	for _, o := range orders {
		summaries = append(summaries, models.OrderSummary{
			ID:          o.ID,
			TotalAmount: o.TotalAmount,
			Status:      o.Status,
			OrderDate:   o.OrderDate,
			ItemsCount:  byOrder[o.ID],
		})
	}
	return summaries, nil
}

// CompareAndSetStatus updates the status only if it still equals from.
func (r *GORMOrderRepository) CompareAndSetStatus(ctx context.Context, id string, from, to models.OrderStatus) (bool, error) {
	res := conn(ctx, r.db).Model(&models.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, fmt.Errorf("failed to update status of order %s: %w", id, res.Error)
	}
	return res.RowsAffected == 1, nil
}
