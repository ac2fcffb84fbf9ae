package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/logger"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/models"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/repositories"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/validation"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo     repositories.CategoryRepository
	log      *logger.Logger
	pipeline *validation.Pipeline[models.NewCategoryRequest]
}

func categoryID(r models.NewCategoryRequest) (int64, bool) {
	return validation.Int64(r.ID)
}

func superCategoryID(r models.NewCategoryRequest) (int64, bool) {
	return validation.Int64(r.SuperCategoryID)
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository, log *logger.Logger) *CategoryService {
	return &CategoryService{
		repo: repo,
		log:  log.With("component", "category"),
		pipeline: validation.NewPipeline(
			validation.Unique("id", "category.id.unique", categoryID, repo.ExistsByID),
			validation.Unique("name", "category.name.unique",
				func(r models.NewCategoryRequest) (string, bool) { return validation.String(r.Name) },
				repo.ExistsByName),
			validation.Exists("superCategory", "category.superCategory.notFound", superCategoryID, repo.ExistsByID),
			validation.NotSelf("superCategory", "category.superCategory.self", categoryID, superCategoryID),
		),
	}
}

// Create registers a category after checking it against the stored ones.
func (s *CategoryService) Create(ctx context.Context, req models.NewCategoryRequest) (*models.Category, error) {
	if err := check(ctx, s.pipeline, req); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:            req.Name,
		SuperCategoryID: req.SuperCategoryID,
	}
	if req.ID != nil {
		category.ID = *req.ID
	}

	if err := s.repo.Create(ctx, category); err != nil {
		if req.SuperCategoryID != nil {
			if ok, lookupErr := s.repo.ExistsByID(ctx, *req.SuperCategoryID); lookupErr == nil && !ok {
				return nil, fmt.Errorf("%w: category %d", ErrReferenceNotFound, *req.SuperCategoryID)
			}
		}
		return nil, err
	}

	s.log.Info("category created", "category_id", category.ID, "name", category.Name)
	return category, nil
}

// Get returns a category with its super category resolved.
func (s *CategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrCategoryNotFound, id)
		}
		return nil, err
	}
	return category, nil
}
