package handlers

import (
	"fmt"

	"mealkit/internal/models"
	"mealkit/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderItemRequest is one line of CreateOrderRequest.
type OrderItemRequest struct {
	RecipeID       string `json:"recipe_id" validate:"required"`
	NumberOfPeople int    `json:"number_of_people" validate:"min=1,max=20"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	DeliveryAddress string             `json:"delivery_address" validate:"required"`
	DeliveryPhone   *string            `json:"delivery_phone" validate:"omitempty,max=20"`
	SpecialNotes    *string            `json:"special_notes"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CheckoutRequest is the body of POST /orders/checkout.
type CheckoutRequest struct {
	DeliveryAddress string  `json:"delivery_address" validate:"required"`
	DeliveryPhone   *string `json:"delivery_phone" validate:"omitempty,max=20"`
	SpecialNotes    *string `json:"special_notes"`
}

// UpdateStatusRequest is the body of PUT /orders/:id/status.
type UpdateStatusRequest struct {
	NewStatus string `json:"new_status" validate:"required"`
}

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
	log      *zap.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
		log:      log,
	}
}

// RegisterRoutes registers the order routes. router must be authenticated.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Post("/checkout", h.HandleCheckout)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Put("/:id/status", h.HandleUpdateOrderStatus)
}

// HandleGetOrders lists the caller's orders, newest first.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders(c.UserContext(), currentUserID(c),
		c.QueryInt("skip", 0),
		c.QueryInt("limit", services.DefaultOrderLimit),
	)
	if err != nil {
		return respondError(c, h.log, err, "Could not retrieve orders")
	}
	return c.JSON(newOrderSummaryResponses(orders))
}

// HandleGetOrderByID returns one of the caller's orders with its lines.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrder(c.UserContext(), currentUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err, "Could not retrieve order")
	}
	return c.JSON(newOrderResponse(order))
}

// HandleCreateOrder places an order from an explicit item list.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	items := make([]services.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = services.OrderItemInput{RecipeID: item.RecipeID, NumberOfPeople: item.NumberOfPeople}
	}

	order, err := h.service.CreateOrder(c.UserContext(), currentUserID(c), services.CreateOrderInput{
		DeliveryAddress: req.DeliveryAddress,
		DeliveryPhone:   req.DeliveryPhone,
		SpecialNotes:    req.SpecialNotes,
		Items:           items,
	})
	if err != nil {
		return respondError(c, h.log, err, "Could not create order")
	}
	return c.Status(fiber.StatusCreated).JSON(newOrderResponse(order))
}

// HandleCheckout places an order from the caller's cart.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	order, err := h.service.CheckoutCart(c.UserContext(), currentUserID(c), services.CheckoutInput{
		DeliveryAddress: req.DeliveryAddress,
		DeliveryPhone:   req.DeliveryPhone,
		SpecialNotes:    req.SpecialNotes,
	})
	if err != nil {
		return respondError(c, h.log, err, "Could not check out cart")
	}
	return c.Status(fiber.StatusCreated).JSON(newOrderResponse(order))
}

// HandleUpdateOrderStatus moves an order to a new status.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	orderID := c.Params("id")
	order, err := h.service.UpdateOrderStatus(c.UserContext(), currentUserID(c), orderID, models.OrderStatus(req.NewStatus))
	if err != nil {
		return respondError(c, h.log, err, fmt.Sprintf("Could not update status of order %s", orderID))
	}
	return c.JSON(newOrderResponse(order))
}
