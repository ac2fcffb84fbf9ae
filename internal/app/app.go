// Package app wires repositories, services and handlers into a Fiber application.
package app

import (
	"errors"
	"time"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/config"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/handlers"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/logger"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/middleware"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/repositories"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/services"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Dependencies are the resources the application runs on. Publisher may be nil.
type Dependencies struct {
	DB        *gorm.DB
	Config    *config.Config
	Logger    *logger.Logger
	Publisher services.EventPublisher
}

// NewApp builds the HTTP application.
func NewApp(deps Dependencies) (*fiber.App, error) {
	if deps.DB == nil || deps.Config == nil {
		return nil, errors.New("app: database and config are required")
	}
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	// --- Repositories ---
	categoryRepo := repositories.NewGORMCategoryRepository(deps.DB)
	userRepo := repositories.NewGORMUserRepository(deps.DB)
	productRepo := repositories.NewGORMProductRepository(deps.DB)
	opinionRepo := repositories.NewGORMOpinionRepository(deps.DB)
	questionRepo := repositories.NewGORMQuestionRepository(deps.DB)
	purchaseRepo := repositories.NewGORMPurchaseRepository(deps.DB)

	// --- Services ---
	authService := services.NewAuthService(userRepo, deps.Config.JWTSecret, deps.Config.JWTTTL, deps.Config.DefaultScopes, log)
	userService := services.NewUserService(userRepo, log)
	categoryService := services.NewCategoryService(categoryRepo, log)
	productService := services.NewProductService(productRepo, categoryRepo, opinionRepo, questionRepo, log)
	opinionService := services.NewOpinionService(opinionRepo, productRepo, log)
	questionService := services.NewQuestionService(questionRepo, productRepo, deps.Publisher, log)
	purchaseService := services.NewPurchaseService(purchaseRepo, productRepo, deps.Publisher, deps.Config.PaymentGatewayURL, log)

	// --- Fiber App ---
	app := fiber.New(fiber.Config{
		AppName:      "loja-virtual",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		database := "up"
		if sqlDB, err := deps.DB.DB(); err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			database = "down"
		}
		messaging := "disabled"
		if deps.Publisher != nil {
			messaging = "enabled"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "healthy",
			"time":      time.Now().Format(time.RFC3339),
			"database":  database,
			"messaging": messaging,
		})
	})

	// --- API Routes ---
	api := app.Group("/api")

	// Public routes
	handlers.NewAuthHandler(authService, log).RegisterRoutes(api)
	handlers.NewUserHandler(userService, log).RegisterRoutes(api)

	// Protected routes (require JWT authentication)
	auth := middleware.AuthRequired(authService, log)
	handlers.NewCategoryHandler(categoryService, log).RegisterRoutes(api, auth)
	handlers.NewProductHandler(productService, userService, log).RegisterRoutes(api, auth)
	handlers.NewOpinionHandler(opinionService, userService, log).RegisterRoutes(api, auth)
	handlers.NewQuestionHandler(questionService, userService, log).RegisterRoutes(api, auth)
	handlers.NewPurchaseHandler(purchaseService, userService, log).RegisterRoutes(api, auth)

	return app, nil
}
