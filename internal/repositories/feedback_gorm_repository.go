package repositories

import (
	"context"
	"fmt"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/models"

	"gorm.io/gorm"
)

// GORMOpinionRepository is a GORM implementation of OpinionRepository.
type GORMOpinionRepository struct {
	db *gorm.DB
}

// NewGORMOpinionRepository creates a new instance of GORMOpinionRepository.
func NewGORMOpinionRepository(db *gorm.DB) *GORMOpinionRepository {
	return &GORMOpinionRepository{db: db}
}

func (r *GORMOpinionRepository) Create(ctx context.Context, opinion *models.ProductOpinion) error {
	if err := r.db.WithContext(ctx).Create(opinion).Error; err != nil {
		return fmt.Errorf("failed to create opinion: %w", err)
	}
	return nil
}

func (r *GORMOpinionRepository) ListByProduct(ctx context.Context, productID string) ([]models.ProductOpinion, error) {
	var opinions []models.ProductOpinion
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("id").Find(&opinions).Error; err != nil {
		return nil, fmt.Errorf("failed to list opinions of product %s: %w", productID, err)
	}
	return opinions, nil
}

// GORMQuestionRepository is a GORM implementation of QuestionRepository.
type GORMQuestionRepository struct {
	db *gorm.DB
}

// NewGORMQuestionRepository creates a new instance of GORMQuestionRepository.
func NewGORMQuestionRepository(db *gorm.DB) *GORMQuestionRepository {
	return &GORMQuestionRepository{db: db}
}

func (r *GORMQuestionRepository) Create(ctx context.Context, question *models.Question) error {
	if err := r.db.WithContext(ctx).Create(question).Error; err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

func (r *GORMQuestionRepository) ListByProduct(ctx context.Context, productID string) ([]models.Question, error) {
	var questions []models.Question
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("id").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to list questions of product %s: %w", productID, err)
	}
	return questions, nil
}
