package handlers

import (
	"errors"
	"fmt"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/logger"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/middleware"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/models"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
	users   *services.UserService
	log     *logger.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, users *services.UserService, log *logger.Logger) *ProductHandler {
	return &ProductHandler{service: service, users: users, log: log}
}

// RegisterRoutes registers the product routes; auth runs before the scope check on each of them.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", auth, middleware.RequireScope("product:write"), h.HandleCreateProduct)
	productRoutes.Get("/:id", auth, middleware.RequireScope("product:read"), h.HandleGetProductDetails)
}

// HandleCreateProduct registers a product owned by the caller.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	owner, err := currentUser(c, h.users)
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req models.NewProductRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	product, err := h.service.Create(c.UserContext(), req, owner)
	if err != nil {
		return respondError(c, h.log, err)
	}

	c.Location(fmt.Sprintf("/api/products/%s", product.ID))
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleGetProductDetails returns the product page.
func (h *ProductHandler) HandleGetProductDetails(c *fiber.Ctx) error {
	productID := c.Params("id")
	details, err := h.service.Details(c.UserContext(), productID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		return respondError(c, h.log, err)
	}
	return c.JSON(details)
}
