package handlers

import (
	"github.com/danyllosoareszup/loja-virtual-testes/internal/logger"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	log         *logger.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         log,
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/token", h.HandleToken)
}

// TokenRequest represents the request body for issuing a token.
type TokenRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// HandleToken authenticates the user and issues a JWT token.
func (h *AuthHandler) HandleToken(c *fiber.Ctx) error {
	var req TokenRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	if req.Login == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "login and password are required",
		})
	}

	token, err := h.authService.IssueToken(c.UserContext(), req.Login, req.Password)
	if err != nil {
		h.log.Info("token refused", "login", req.Login)
		return respondError(c, h.log, err)
	}

	return c.JSON(fiber.Map{
		"token": token,
	})
}
