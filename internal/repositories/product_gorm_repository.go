package repositories

import (
	"context"
	"fmt"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create stores the product together with its photos and characteristics.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	for i := range product.Photos {
		product.Photos[i].Position = i
	}
	if err := r.db.WithContext(ctx).Omit("Category", "Owner").Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetByID retrieves a single product by its ID, with photos, characteristics, category and owner.
func (r *GORMProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Characteristics").
		Preload("Category").
		Preload("Owner").
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, "product with ID %s", id)
	}
	return &product, nil
}

// ExistsByID reports whether a product with the given ID is stored.
func (r *GORMProductRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	return existsBy(ctx, r.db, &models.Product{}, "id", id)
}
