package services

import (
	"context"
	"encoding/json"
	"time"

	"mealkit/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// EventPublisher delivers a message body under a routing key.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// OrderCreatedEvent is published once an order is committed.
type OrderCreatedEvent struct {
	OrderID     string          `json:"order_id"`
	UserID      string          `json:"user_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	ItemsCount  int             `json:"items_count"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

// OrderStatusChangedEvent is published after a committed status change.
type OrderStatusChangedEvent struct {
	OrderID    string    `json:"order_id"`
	UserID     string    `json:"user_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurred_at"`
}

// publish sends event if a publisher is configured. Failures are logged only.
func publish(ctx context.Context, p EventPublisher, log *zap.Logger, routingKey string, event any) {
	if p == nil {
		return
	}
	l := logger.FromCtx(ctx, log).With(zap.String("routing_key", routingKey))

	body, err := json.Marshal(event)
	if err != nil {
		l.Error("failed to marshal event", zap.Error(err))
		return
	}
	if err := p.Publish(routingKey, body); err != nil {
		l.Warn("failed to publish event", zap.Error(err))
		return
	}
	l.Debug("event published")
}
