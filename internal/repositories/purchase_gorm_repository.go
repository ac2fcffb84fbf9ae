package repositories

import (
	"context"
	"fmt"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPurchaseRepository is a GORM implementation of PurchaseRepository.
type GORMPurchaseRepository struct {
	db *gorm.DB
}

// NewGORMPurchaseRepository creates a new instance of GORMPurchaseRepository.
func NewGORMPurchaseRepository(db *gorm.DB) *GORMPurchaseRepository {
	return &GORMPurchaseRepository{db: db}
}

// Reserve decrements stock with a single conditional UPDATE and inserts the purchase in
// the same transaction. Concurrent callers cannot drive stock_quantity below zero: the
// guard is evaluated by the database against the row being written.
func (r *GORMPurchaseRepository) Reserve(ctx context.Context, purchase *models.Purchase) error {
	if purchase.Quantity <= 0 {
		return fmt.Errorf("invalid quantity %d for product %s", purchase.Quantity, purchase.ProductID)
	}
	if purchase.ID == "" {
		purchase.ID = uuid.New().String()
	}
	if purchase.PaymentToken == "" {
		purchase.PaymentToken = models.PaymentTokenFor(purchase.ID)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).
			Where("id = ? AND stock_quantity >= ?", purchase.ProductID, purchase.Quantity).
			Update("stock_quantity", gorm.Expr("stock_quantity - ?", purchase.Quantity))
		if res.Error != nil {
			return fmt.Errorf("failed to decrement stock of product %s: %w", purchase.ProductID, res.Error)
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.Product{}).Where("id = ?", purchase.ProductID).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check product %s: %w", purchase.ProductID, err)
			}
			if count == 0 {
				return fmt.Errorf("product with ID %s: %w", purchase.ProductID, ErrNotFound)
			}
			return fmt.Errorf("product with ID %s: %w", purchase.ProductID, ErrInsufficientStock)
		}

		if err := tx.Create(purchase).Error; err != nil {
			return fmt.Errorf("failed to create purchase: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a purchase by its ID.
func (r *GORMPurchaseRepository) GetByID(ctx context.Context, id string) (*models.Purchase, error) {
	var purchase models.Purchase
	if err := r.db.WithContext(ctx).First(&purchase, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "purchase with ID %s", id)
	}
	return &purchase, nil
}
