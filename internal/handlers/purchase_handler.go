package handlers

import (
	"github.com/danyllosoareszup/loja-virtual-testes/internal/logger"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/middleware"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/models"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PurchaseHandler handles HTTP requests for purchases.
type PurchaseHandler struct {
	service *services.PurchaseService
	users   *services.UserService
	log     *logger.Logger
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(service *services.PurchaseService, users *services.UserService, log *logger.Logger) *PurchaseHandler {
	return &PurchaseHandler{service: service, users: users, log: log}
}

// RegisterRoutes registers the purchase routes; auth runs before the scope check on each of them.
func (h *PurchaseHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Post("/purchase", auth, middleware.RequireScope("purchase:write"), h.HandlePurchase)
}

// HandlePurchase reserves the stock and answers with where to pay for it.
func (h *PurchaseHandler) HandlePurchase(c *fiber.Ctx) error {
	buyer, err := currentUser(c, h.users)
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req models.NewPurchaseRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	receipt, err := h.service.Buy(c.UserContext(), req, buyer, c.BaseURL()+"/api/purchase")
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(receipt)
}
