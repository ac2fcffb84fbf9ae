package handlers

import (
	"errors"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/logger"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/middleware"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/models"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/services"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors to HTTP responses.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	if verrs, ok := validation.AsErrors(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  verrs.Violations,
		})
	}

	switch {
	case errors.Is(err, services.ErrOutOfStock):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Purchase failed",
			"errors": []validation.Violation{{
				Field:   "quantity",
				Code:    services.OutOfStockCode,
				Message: "product does not have enough units in stock",
			}},
		})
	case errors.Is(err, services.ErrUserNotRegistered),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrReferenceNotFound),
		errors.Is(err, services.ErrInvalidQuantity):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrCategoryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
		})
	}

	log.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}

// parseBody decodes the JSON body into out, answering 400 itself when it cannot.
func parseBody(c *fiber.Ctx, out interface{}) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	return true, nil
}

// currentUser loads the user the bearer token was issued to.
func currentUser(c *fiber.Ctx, users *services.UserService) (*models.User, error) {
	email, ok := middleware.Principal(c)
	if !ok {
		return nil, services.ErrUserNotRegistered
	}
	return users.FindByEmail(c.UserContext(), email)
}
