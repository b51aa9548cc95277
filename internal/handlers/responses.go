package handlers

import (
	"time"

	"mealkit/internal/models"
	"mealkit/internal/pricing"
	"mealkit/internal/services"
)

// Money is always rendered with two decimal places.

type categoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
}

type recipeResponse struct {
	ID              string            `json:"id"`
	CategoryID      string            `json:"category_id"`
	Category        *categoryResponse `json:"category,omitempty"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	BasePrice       string            `json:"base_price"`
	PrepTimeMinutes int               `json:"prep_time_minutes"`
	Difficulty      models.Difficulty `json:"difficulty"`
	ImageURL        string            `json:"image_url"`
	IsAvailable     bool              `json:"is_available"`
}

type recipePricingResponse struct {
	Recipe          recipeResponse `json:"recipe"`
	NumberOfPeople  int            `json:"number_of_people"`
	CalculatedPrice string         `json:"calculated_price"`
}

type cartItemResponse struct {
	ID              string          `json:"id"`
	RecipeID        string          `json:"recipe_id"`
	NumberOfPeople  int             `json:"number_of_people"`
	CalculatedPrice string          `json:"calculated_price"`
	Recipe          *recipeResponse `json:"recipe,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

type cartResponse struct {
	Items       []cartItemResponse `json:"items"`
	TotalAmount string             `json:"total_amount"`
	TotalItems  int                `json:"total_items"`
}

type orderItemResponse struct {
	ID              string          `json:"id"`
	RecipeID        string          `json:"recipe_id"`
	NumberOfPeople  int             `json:"number_of_people"`
	UnitPrice       string          `json:"unit_price"`
	CalculatedPrice string          `json:"calculated_price"`
	Recipe          *recipeResponse `json:"recipe,omitempty"`
}

type orderResponse struct {
	ID                string              `json:"id"`
	UserID            string              `json:"user_id"`
	TotalAmount       string              `json:"total_amount"`
	Status            models.OrderStatus  `json:"status"`
	DeliveryAddress   string              `json:"delivery_address"`
	DeliveryPhone     *string             `json:"delivery_phone"`
	SpecialNotes      *string             `json:"special_notes"`
	OrderDate         time.Time           `json:"order_date"`
	EstimatedDelivery time.Time           `json:"estimated_delivery"`
	OrderItems        []orderItemResponse `json:"order_items"`
}

type orderSummaryResponse struct {
	ID          string             `json:"id"`
	TotalAmount string             `json:"total_amount"`
	Status      models.OrderStatus `json:"status"`
	OrderDate   time.Time          `json:"order_date"`
	ItemsCount  int                `json:"items_count"`
}

type userResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CountryCode string    `json:"country_code"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func newCategoryResponse(c *models.Category) categoryResponse {
	return categoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		ImageURL:     c.ImageURL,
		DisplayOrder: c.DisplayOrder,
	}
}

func newRecipeResponse(r *models.Recipe) recipeResponse {
	resp := recipeResponse{
		ID:              r.ID,
		CategoryID:      r.CategoryID,
		Name:            r.Name,
		Description:     r.Description,
		BasePrice:       pricing.Format(r.BasePrice),
		PrepTimeMinutes: r.PrepTimeMinutes,
		Difficulty:      r.Difficulty,
		ImageURL:        r.ImageURL,
		IsAvailable:     r.IsAvailable,
	}
	if r.Category != nil {
		c := newCategoryResponse(r.Category)
		resp.Category = &c
	}
	return resp
}

func newRecipeListResponse(recipes []models.Recipe) []recipeResponse {
	out := make([]recipeResponse, len(recipes))
	for i := range recipes {
		out[i] = newRecipeResponse(&recipes[i])
	}
	return out
}

func newRecipePricingResponse(p *services.RecipePricing) recipePricingResponse {
	return recipePricingResponse{
		Recipe:          newRecipeResponse(p.Recipe),
		NumberOfPeople:  p.NumberOfPeople,
		CalculatedPrice: pricing.Format(p.CalculatedPrice),
	}
}

func newCartItemResponse(item *models.PricedCartItem) cartItemResponse {
	resp := cartItemResponse{
		ID:              item.ID,
		RecipeID:        item.RecipeID,
		NumberOfPeople:  item.NumberOfPeople,
		CalculatedPrice: pricing.Format(item.CalculatedPrice),
		CreatedAt:       item.CreatedAt,
	}
	if item.Recipe != nil {
		r := newRecipeResponse(item.Recipe)
		resp.Recipe = &r
	}
	return resp
}

func newCartResponse(cart *models.Cart) cartResponse {
	resp := cartResponse{
		Items:       make([]cartItemResponse, len(cart.Items)),
		TotalAmount: pricing.Format(cart.TotalAmount),
		TotalItems:  cart.TotalItems,
	}
	for i := range cart.Items {
		resp.Items[i] = newCartItemResponse(&cart.Items[i])
	}
	return resp
}

func newOrderResponse(o *models.Order) orderResponse {
	resp := orderResponse{
		ID:                o.ID,
		UserID:            o.UserID,
		TotalAmount:       pricing.Format(o.TotalAmount),
		Status:            o.Status,
		DeliveryAddress:   o.DeliveryAddress,
		DeliveryPhone:     o.DeliveryPhone,
		SpecialNotes:      o.SpecialNotes,
		OrderDate:         o.OrderDate,
		EstimatedDelivery: o.EstimatedDelivery,
		OrderItems:        make([]orderItemResponse, len(o.Items)),
	}
	for i, item := range o.Items {
		line := orderItemResponse{
			ID:              item.ID,
			RecipeID:        item.RecipeID,
			NumberOfPeople:  item.NumberOfPeople,
			UnitPrice:       pricing.Format(item.UnitPrice),
			CalculatedPrice: pricing.Format(item.CalculatedPrice),
		}
		if item.Recipe != nil {
			r := newRecipeResponse(item.Recipe)
			line.Recipe = &r
		}
		resp.OrderItems[i] = line
	}
	return resp
}

func newOrderSummaryResponses(summaries []models.OrderSummary) []orderSummaryResponse {
	out := make([]orderSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = orderSummaryResponse{
			ID:          s.ID,
			TotalAmount: pricing.Format(s.TotalAmount),
			Status:      s.Status,
			OrderDate:   s.OrderDate,
			ItemsCount:  s.ItemsCount,
		}
	}
	return out
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		CountryCode: u.CountryCode,
		Phone:       u.Phone,
		Address:     u.Address,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}
