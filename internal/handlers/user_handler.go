package handlers

import (
	"fmt"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/logger"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/models"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service *services.UserService
	log     *logger.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{service: service, log: log}
}

// RegisterRoutes registers the user routes. They are public.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/users", h.HandleRegister)
}

// HandleRegister handles new user registration.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var req models.NewUserRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	user, err := h.service.Register(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}

	c.Location(fmt.Sprintf("/api/users/%d", user.ID))
	return c.Status(fiber.StatusCreated).JSON(user)
}
