package handlers

import (
	"github.com/danyllosoareszup/loja-virtual-testes/internal/logger"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/middleware"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/models"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/services"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles HTTP requests for questions about products.
type QuestionHandler struct {
	service *services.QuestionService
	users   *services.UserService
	log     *logger.Logger
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(service *services.QuestionService, users *services.UserService, log *logger.Logger) *QuestionHandler {
	return &QuestionHandler{service: service, users: users, log: log}
}

// RegisterRoutes registers the question routes; auth runs before the scope check on each of them.
func (h *QuestionHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Post("/products/:id/questions", auth, middleware.RequireScope("questions:write"), h.HandleAskQuestion)
}

// HandleAskQuestion stores the question and answers with every question of the product.
func (h *QuestionHandler) HandleAskQuestion(c *fiber.Ctx) error {
	author, err := currentUser(c, h.users)
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req models.NewQuestionRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	req.ProductID = c.Params("id")

	_, questions, err := h.service.Ask(c.UserContext(), req, author)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(questions)
}
