package handlers

import (
	"mealkit/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AddCartItemRequest is the body of POST /cart/add.
type AddCartItemRequest struct {
	RecipeID       string `json:"recipe_id" validate:"required"`
	NumberOfPeople int    `json:"number_of_people" validate:"min=1,max=20"`
}

// UpdateCartItemRequest is the body of PUT /cart/item/:id.
type UpdateCartItemRequest struct {
	NumberOfPeople int `json:"number_of_people" validate:"min=1,max=20"`
}

// CartHandler handles HTTP requests for the caller's cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
	log      *zap.Logger
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
		log:      log,
	}
}

// RegisterRoutes registers the cart routes. router must be authenticated.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cart := router.Group("/cart")
	cart.Get("/", h.HandleGetCart)
	cart.Post("/add", h.HandleAddItem)
	cart.Put("/item/:id", h.HandleUpdateItem)
	cart.Delete("/item/:id", h.HandleRemoveItem)
	cart.Delete("/clear", h.HandleClear)
}

// HandleGetCart returns the cart with live prices.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart, err := h.service.GetCart(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, h.log, err, "Could not retrieve cart")
	}
	return c.JSON(newCartResponse(cart))
}

// HandleAddItem adds a recipe or replaces its people count.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddCartItemRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	item, err := h.service.AddItem(c.UserContext(), currentUserID(c), req.RecipeID, req.NumberOfPeople)
	if err != nil {
		return respondError(c, h.log, err, "Could not add item to cart")
	}
	return c.JSON(newCartItemResponse(item))
}

// HandleUpdateItem changes the people count of a cart item.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var req UpdateCartItemRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	item, err := h.service.UpdateItem(c.UserContext(), currentUserID(c), c.Params("id"), req.NumberOfPeople)
	if err != nil {
		return respondError(c, h.log, err, "Could not update cart item")
	}
	return c.JSON(newCartItemResponse(item))
}

// HandleRemoveItem deletes a cart item.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	if err := h.service.RemoveItem(c.UserContext(), currentUserID(c), c.Params("id")); err != nil {
		return respondError(c, h.log, err, "Could not remove cart item")
	}
	return c.JSON(fiber.Map{
		"message": "Item removed from cart",
	})
}

// HandleClear empties the cart.
func (h *CartHandler) HandleClear(c *fiber.Ctx) error {
	n, err := h.service.Clear(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, h.log, err, "Could not clear cart")
	}
	return c.JSON(fiber.Map{
		"message":       "Cart cleared",
		"items_removed": n,
	})
}
