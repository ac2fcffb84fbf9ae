package repositories

import (
	"context"
	"errors"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/models"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInsufficientStock is returned by Reserve when the product holds less than the requested quantity.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ProductRepository defines the interface for product data access.
// There is no Update: stock only moves through PurchaseRepository.Reserve.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// OpinionRepository defines the interface for product opinion data access.
type OpinionRepository interface {
	Create(ctx context.Context, opinion *models.ProductOpinion) error
	ListByProduct(ctx context.Context, productID string) ([]models.ProductOpinion, error)
}

// QuestionRepository defines the interface for question data access.
type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	ListByProduct(ctx context.Context, productID string) ([]models.Question, error)
}

// PurchaseRepository defines the interface for purchase data access.
type PurchaseRepository interface {
	// Reserve takes purchase.Quantity units out of the product stock and records the
	// purchase as one unit of work. It returns ErrInsufficientStock, leaving the stock
	// untouched, when not enough units are left, and ErrNotFound when the product is gone.
	Reserve(ctx context.Context, purchase *models.Purchase) error
	GetByID(ctx context.Context, id string) (*models.Purchase, error)
}
