package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mealkit/internal/apperrors"
	"mealkit/internal/logger"
	"mealkit/internal/metrics"
	"mealkit/internal/models"
	"mealkit/internal/pricing"
	"mealkit/internal/repositories"

	"go.uber.org/zap"
)

const (
	DefaultOrderLimit = 20
	MaxOrderLimit     = 100

	// maxStatusAttempts bounds the compare-and-set loop in UpdateOrderStatus.
	maxStatusAttempts = 5
)

// OrderItemInput is one requested order line.
type OrderItemInput struct {
	RecipeID       string
	NumberOfPeople int
}

// CreateOrderInput carries everything needed to place an order.
type CreateOrderInput struct {
	DeliveryAddress string
	DeliveryPhone   *string
	SpecialNotes    *string
	Items           []OrderItemInput
}

// CheckoutInput places an order from the caller's cart.
type CheckoutInput struct {
	DeliveryAddress string
	DeliveryPhone   *string
	SpecialNotes    *string
}

// OrderService handles order creation and the order status lifecycle.
type OrderService struct {
	orders    repositories.OrderRepository
	recipes   repositories.RecipeRepository
	carts     repositories.CartRepository
	tx        repositories.Transactor
	publisher EventPublisher
	metrics   *metrics.Metrics
	log       *zap.Logger
	now       func() time.Time
}

// NewOrderService creates a new OrderService. publisher and m may be nil.
func NewOrderService(
	orders repositories.OrderRepository,
	recipes repositories.RecipeRepository,
	carts repositories.CartRepository,
	tx repositories.Transactor,
	publisher EventPublisher,
	m *metrics.Metrics,
	log *zap.Logger,
) *OrderService {
	return &OrderService{
		orders:    orders,
		recipes:   recipes,
		carts:     carts,
		tx:        tx,
		publisher: publisher,
		metrics:   m,
		log:       log,
		now:       time.Now,
	}
}

// CreateOrder freezes current recipe prices into a new pending order and
// empties the user's cart in the same transaction.
func (s *OrderService) CreateOrder(ctx context.Context, userID string, in CreateOrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, apperrors.InvalidInput("order must contain at least one item")
	}
	address := strings.TrimSpace(in.DeliveryAddress)
	if address == "" {
		return nil, apperrors.InvalidInput("delivery address is required")
	}
	for _, item := range in.Items {
		if err := pricing.ValidatePeople(item.NumberOfPeople); err != nil {
			return nil, fmt.Errorf("recipe %s: %w", item.RecipeID, err)
		}
	}

	now := s.now().UTC()
	order := &models.Order{
		UserID:            userID,
		Status:            models.StatusPending,
		DeliveryAddress:   address,
		DeliveryPhone:     in.DeliveryPhone,
		SpecialNotes:      in.SpecialNotes,
		OrderDate:         now,
		EstimatedDelivery: now.Add(models.DeliveryWindow),
		Items:             make([]models.OrderItem, 0, len(in.Items)),
	}

	var recipes []*models.Recipe
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		lines := make([]pricing.Line, 0, len(in.Items))
		recipes = make([]*models.Recipe, 0, len(in.Items))
		order.Items = order.Items[:0]

		for _, item := range in.Items {
			recipe, err := s.recipes.GetAvailableByID(ctx, item.RecipeID)
			if err != nil {
				return err
			}
			if !recipe.Orderable() {
				return apperrors.NotFound("recipe with ID %s is not orderable", item.RecipeID)
			}
			line := pricing.Line{UnitPrice: recipe.BasePrice, People: item.NumberOfPeople}
			lines = append(lines, line)
			recipes = append(recipes, recipe)
			order.Items = append(order.Items, models.OrderItem{
				RecipeID:        recipe.ID,
				NumberOfPeople:  item.NumberOfPeople,
				UnitPrice:       line.UnitPrice,
				CalculatedPrice: line.Total(),
				CreatedAt:       now,
			})
		}
		order.TotalAmount = pricing.OrderTotal(lines)

		if err := s.orders.Create(ctx, order); err != nil {
			return err
		}
		_, err := s.carts.ClearByUser(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	for i := range order.Items {
		order.Items[i].Recipe = recipes[i]
	}

	s.metrics.OrderCreated()
	logger.FromCtx(ctx, s.log).Info("order created",
		zap.String("order_id", order.ID),
		zap.String("user_id", userID),
		zap.String("total_amount", pricing.Format(order.TotalAmount)),
		zap.Int("items", len(order.Items)),
	)
	publish(ctx, s.publisher, s.log, EventOrderCreated, OrderCreatedEvent{
		OrderID:     order.ID,
		UserID:      userID,
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
		ItemsCount:  len(order.Items),
		OccurredAt:  now,
	})
	return order, nil
}

// CheckoutCart places an order for everything currently in the user's cart.
func (s *OrderService) CheckoutCart(ctx context.Context, userID string, in CheckoutInput) (*models.Order, error) {
	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.InvalidInput("cart is empty")
	}

	inputs := make([]OrderItemInput, len(items))
	for i, item := range items {
		inputs[i] = OrderItemInput{RecipeID: item.RecipeID, NumberOfPeople: item.NumberOfPeople}
	}
	return s.CreateOrder(ctx, userID, CreateOrderInput{
		DeliveryAddress: in.DeliveryAddress,
		DeliveryPhone:   in.DeliveryPhone,
		SpecialNotes:    in.SpecialNotes,
		Items:           inputs,
	})
}

// ListOrders returns the user's order summaries, newest first. limit is
// clamped to [1, MaxOrderLimit]; zero means DefaultOrderLimit.
func (s *OrderService) ListOrders(ctx context.Context, userID string, skip, limit int) ([]models.OrderSummary, error) {
	if skip < 0 {
		skip = 0
	}
	switch {
	case limit == 0:
		limit = DefaultOrderLimit
	case limit < 1:
		limit = 1
	case limit > MaxOrderLimit:
		limit = MaxOrderLimit
	}
	return s.orders.ListByUser(ctx, userID, skip, limit)
}

// GetOrder returns an order owned by the user.
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID string) (*models.Order, error) {
	return s.orders.GetByIDForUser(ctx, userID, orderID)
}

// UpdateOrderStatus moves an owned order to next. The transition is checked
// against the latest stored status and applied with compare-and-set, so a
// concurrent writer forces a re-read instead of a lost update.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, userID, orderID string, next models.OrderStatus) (*models.Order, error) {
	if !next.Valid() {
		return nil, apperrors.InvalidInput("unknown order status %q", next)
	}

	for attempt := 0; attempt < maxStatusAttempts; attempt++ {
		order, err := s.orders.GetByIDForUser(ctx, userID, orderID)
		if err != nil {
			return nil, err
		}
		current := order.Status
		if !current.CanTransitionTo(next) {
			return nil, &apperrors.TransitionError{From: string(current), To: string(next)}
		}

		ok, err := s.orders.CompareAndSetStatus(ctx, orderID, current, next)
		if err != nil {
			return nil, err
		}
		if !ok {
			logger.FromCtx(ctx, s.log).Debug("order status changed concurrently, re-reading",
				zap.String("order_id", orderID),
				zap.Int("attempt", attempt+1),
			)
			continue
		}

		order.Status = next
		s.metrics.StatusChanged(string(current), string(next))
		logger.FromCtx(ctx, s.log).Info("order status updated",
			zap.String("order_id", orderID),
			zap.String("from", string(current)),
			zap.String("to", string(next)),
		)
		publish(ctx, s.publisher, s.log, EventOrderStatusChanged, OrderStatusChangedEvent{
			OrderID:    orderID,
			UserID:     userID,
			From:       string(current),
			To:         string(next),
			OccurredAt: s.now().UTC(),
		})
		return order, nil
	}
	return nil, fmt.Errorf("order %s status kept changing after %d attempts: %w", orderID, maxStatusAttempts, apperrors.ErrConflict)
}
