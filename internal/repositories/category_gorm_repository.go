package repositories

import (
	"context"
	"fmt"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/models"

	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

// Create stores a category. A self-referencing category is rejected by the model hook.
func (r *GORMCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Omit("SuperCategory").Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetByID retrieves a category and its direct super category.
func (r *GORMCategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Preload("SuperCategory").First(&category, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "category with ID %d", id)
	}
	return &category, nil
}

// ExistsByID reports whether a category with the given ID is stored.
func (r *GORMCategoryRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return existsBy(ctx, r.db, &models.Category{}, "id", id)
}

// ExistsByName reports whether the name is already used by a category.
func (r *GORMCategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return existsBy(ctx, r.db, &models.Category{}, "name", name)
}
