package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// Create adds a new product.
func (r *MockProductRepository) Create(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if _, ok := r.products[product.ID]; ok {
		return fmt.Errorf("product with ID %s already exists", product.ID)
	}
	r.products[product.ID] = *product
	return nil
}

// GetByID returns a copy of the product with the given ID.
func (r *MockProductRepository) GetByID(_ context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return &product, nil
}

// ExistsByID reports whether the product is stored.
func (r *MockProductRepository) ExistsByID(_ context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.products[id]
	return ok, nil
}

// withStock runs fn while holding the write lock, after taking quantity units out of the
// product stock. When fn fails the units are put back before the lock is released.
func (r *MockProductRepository) withStock(id string, quantity int, fn func() error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	if product.StockQuantity < quantity {
		return fmt.Errorf("product with ID %s: %w", id, ErrInsufficientStock)
	}
	product.StockQuantity -= quantity
	r.products[id] = product

	if err := fn(); err != nil {
		product.StockQuantity += quantity
		r.products[id] = product
		return err
	}
	return nil
}
