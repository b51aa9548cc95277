package handlers

import (
	"mealkit/internal/pricing"
	"mealkit/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CatalogHandler handles HTTP requests for categories and recipes.
type CatalogHandler struct {
	service *services.CatalogService
	log     *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the public catalog routes.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	categories := router.Group("/categories")
	categories.Get("/", h.HandleListCategories)
	categories.Get("/:id", h.HandleGetCategory)
	categories.Get("/:id/recipes", h.HandleListCategoryRecipes)

	recipes := router.Group("/recipes")
	recipes.Get("/", h.HandleListRecipes)
	recipes.Get("/:id", h.HandleGetRecipe)
	recipes.Get("/:id/pricing", h.HandleGetRecipePricing)
}

// HandleListCategories lists active categories.
func (h *CatalogHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, "Could not retrieve categories")
	}
	out := make([]categoryResponse, len(categories))
	for i := range categories {
		out[i] = newCategoryResponse(&categories[i])
	}
	return c.JSON(out)
}

// HandleGetCategory returns one active category.
func (h *CatalogHandler) HandleGetCategory(c *fiber.Ctx) error {
	category, err := h.service.GetCategory(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err, "Could not retrieve category")
	}
	return c.JSON(newCategoryResponse(category))
}

// HandleListCategoryRecipes lists the available recipes of a category.
func (h *CatalogHandler) HandleListCategoryRecipes(c *fiber.Ctx) error {
	recipes, err := h.service.ListCategoryRecipes(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err, "Could not retrieve recipes")
	}
	return c.JSON(newRecipeListResponse(recipes))
}

// HandleListRecipes lists available recipes with optional filters.
func (h *CatalogHandler) HandleListRecipes(c *fiber.Ctx) error {
	q := services.RecipeQuery{
		CategoryID: c.Query("category_id"),
		Difficulty: c.Query("difficulty"),
		Skip:       c.QueryInt("skip", 0),
		Limit:      c.QueryInt("limit", services.DefaultRecipeLimit),
	}
	recipes, err := h.service.ListRecipes(c.UserContext(), q)
	if err != nil {
		return respondError(c, h.log, err, "Could not retrieve recipes")
	}
	return c.JSON(newRecipeListResponse(recipes))
}

// HandleGetRecipe returns one available recipe.
func (h *CatalogHandler) HandleGetRecipe(c *fiber.Ctx) error {
	recipe, err := h.service.GetRecipe(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err, "Could not retrieve recipe")
	}
	return c.JSON(newRecipeResponse(recipe))
}

// HandleGetRecipePricing quotes a recipe for ?people=N.
func (h *CatalogHandler) HandleGetRecipePricing(c *fiber.Ctx) error {
	people := c.QueryInt("people", pricing.MinPeople)
	quote, err := h.service.GetRecipePricing(c.UserContext(), c.Params("id"), people)
	if err != nil {
		return respondError(c, h.log, err, "Could not price recipe")
	}
	return c.JSON(newRecipePricingResponse(quote))
}
