package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// DeliveryWindow is the fixed offset between order date and estimated delivery.
const DeliveryWindow = 2 * time.Hour

var orderTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:        {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusPreparing, StatusCancelled},
	StatusPreparing:      {StatusOutForDelivery},
	StatusOutForDelivery: {StatusDelivered},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

// OrderStatuses lists every status in lifecycle order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		StatusPending,
		StatusConfirmed,
		StatusPreparing,
		StatusOutForDelivery,
		StatusDelivered,
		StatusCancelled,
	}
}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// IsTerminal reports whether s has no outgoing transitions.
func (s OrderStatus) IsTerminal() bool {
	return s.Valid() && len(orderTransitions[s]) == 0
}

// AllowedTransitions returns the statuses reachable from s in one step.
func (s OrderStatus) AllowedTransitions() []OrderStatus {
	next := orderTransitions[s]
	out := make([]OrderStatus, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether s -> next is in the transition table.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is a frozen line of an order. It is never updated after creation.
type OrderItem struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID         string          `json:"order_id" gorm:"type:varchar(36);not null;index"`
	RecipeID        string          `json:"recipe_id" gorm:"type:varchar(36);not null;index"`
	Recipe          *Recipe         `json:"recipe,omitempty" gorm:"foreignKey:RecipeID"`
	Position        int             `json:"position" gorm:"not null"`
	NumberOfPeople  int             `json:"number_of_people" gorm:"not null"`
	UnitPrice       decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	CalculatedPrice decimal.Decimal `json:"calculated_price" gorm:"type:decimal(10,2);not null"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Order is an immutable snapshot of a purchase. Only Status changes after
// creation, and only through the order service.
type Order struct {
	ID                string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID            string          `json:"user_id" gorm:"type:varchar(36);not null;index"`
	Items             []OrderItem     `json:"order_items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount       decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Status            OrderStatus     `json:"status" gorm:"type:varchar(20);not null;index"`
	DeliveryAddress   string          `json:"delivery_address" gorm:"type:text;not null"`
	DeliveryPhone     *string         `json:"delivery_phone" gorm:"type:varchar(20)"`
	SpecialNotes      *string         `json:"special_notes" gorm:"type:text"`
	OrderDate         time.Time       `json:"order_date" gorm:"not null;index"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// OrderSummary is the list view of an order.
type OrderSummary struct {
	ID          string          `json:"id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      OrderStatus     `json:"status"`
	OrderDate   time.Time       `json:"order_date"`
	ItemsCount  int             `json:"items_count"`
}
