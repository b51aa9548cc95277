package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one recipe in a user's cart. (UserID, RecipeID) is unique.
type CartItem struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID         string    `json:"user_id" gorm:"type:varchar(36);not null;uniqueIndex:unique_user_recipe_cart"`
	RecipeID       string    `json:"recipe_id" gorm:"type:varchar(36);not null;uniqueIndex:unique_user_recipe_cart;index"`
	NumberOfPeople int       `json:"number_of_people" gorm:"not null"`
	Recipe         *Recipe   `json:"recipe,omitempty" gorm:"foreignKey:RecipeID"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PricedCartItem is a cart item with its live price.
type PricedCartItem struct {
	CartItem
	CalculatedPrice decimal.Decimal `json:"calculated_price"`
}

// Cart is the priced view of all of a user's cart items.
type Cart struct {
	Items       []PricedCartItem `json:"items"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
	TotalItems  int              `json:"total_items"`
}
