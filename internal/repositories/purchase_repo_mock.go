package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/models"

	"github.com/google/uuid"
)

// MockPurchaseRepository is an in-memory implementation of PurchaseRepository.
// It reserves stock from the products held by a MockProductRepository.
type MockPurchaseRepository struct {
	products  *MockProductRepository
	purchases map[string]models.Purchase
	mu        sync.RWMutex
}

// NewMockPurchaseRepository creates a new instance of MockPurchaseRepository.
func NewMockPurchaseRepository(products *MockProductRepository) *MockPurchaseRepository {
	return &MockPurchaseRepository{
		products:  products,
		purchases: make(map[string]models.Purchase),
	}
}

// Reserve decrements the stock and records the purchase under the product lock.
func (r *MockPurchaseRepository) Reserve(_ context.Context, purchase *models.Purchase) error {
	if purchase.Quantity <= 0 {
		return fmt.Errorf("invalid quantity %d for product %s", purchase.Quantity, purchase.ProductID)
	}
	if purchase.ID == "" {
		purchase.ID = uuid.New().String()
	}
	if purchase.PaymentToken == "" {
		purchase.PaymentToken = models.PaymentTokenFor(purchase.ID)
	}
	if purchase.CreatedAt.IsZero() {
		purchase.CreatedAt = time.Now()
	}

	return r.products.withStock(purchase.ProductID, purchase.Quantity, func() error {
		r.mu.Lock()
		defer r.mu.Unlock()

		if _, ok := r.purchases[purchase.ID]; ok {
			return fmt.Errorf("purchase with ID %s already exists", purchase.ID)
		}
		r.purchases[purchase.ID] = *purchase
		return nil
	})
}

// GetByID returns a purchase by its ID.
func (r *MockPurchaseRepository) GetByID(_ context.Context, id string) (*models.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	purchase, ok := r.purchases[id]
	if !ok {
		return nil, fmt.Errorf("purchase with ID %s: %w", id, ErrNotFound)
	}
	return &purchase, nil
}

// Count returns how many purchases were recorded.
func (r *MockPurchaseRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.purchases)
}
