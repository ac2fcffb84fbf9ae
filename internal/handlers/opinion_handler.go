package handlers

import (
	"github.com/danyllosoareszup/loja-virtual-testes/internal/logger"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/middleware"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/models"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OpinionHandler handles HTTP requests for product opinions.
type OpinionHandler struct {
	service *services.OpinionService
	users   *services.UserService
	log     *logger.Logger
}

// NewOpinionHandler creates a new OpinionHandler.
func NewOpinionHandler(service *services.OpinionService, users *services.UserService, log *logger.Logger) *OpinionHandler {
	return &OpinionHandler{service: service, users: users, log: log}
}

// RegisterRoutes registers the opinion routes; auth runs before the scope check on each of them.
func (h *OpinionHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Post("/opinions", auth, middleware.RequireScope("opinion:write"), h.HandleCreateOpinion)
}

// HandleCreateOpinion records the caller's opinion about a product.
func (h *OpinionHandler) HandleCreateOpinion(c *fiber.Ctx) error {
	author, err := currentUser(c, h.users)
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req models.NewOpinionRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	opinion, err := h.service.Create(c.UserContext(), req, author)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(opinion)
}
