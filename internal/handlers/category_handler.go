package handlers

import (
	"fmt"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/logger"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/middleware"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/models"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service *services.CategoryService
	log     *logger.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{service: service, log: log}
}

// RegisterRoutes registers the category routes; auth runs before the scope check on each of them.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Post("/", auth, middleware.RequireScope("categories:write"), h.HandleCreateCategory)
	categoryRoutes.Get("/:id", auth, middleware.RequireScope("product:read"), h.HandleGetCategory)
}

// HandleCreateCategory registers a category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req models.NewCategoryRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	category, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}

	c.Location(fmt.Sprintf("/api/categories/%d", category.ID))
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleGetCategory returns a category with its super category.
func (h *CategoryHandler) HandleGetCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid category ID",
		})
	}

	category, err := h.service.Get(c.UserContext(), int64(id))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(category)
}
