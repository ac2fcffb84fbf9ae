package services

import (
	"context"
	"fmt"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/logger"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/models"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/repositories"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/validation"
)

// OpinionService handles product reviews.
type OpinionService struct {
	repo     repositories.OpinionRepository
	products repositories.ProductRepository
	log      *logger.Logger
	pipeline *validation.Pipeline[models.NewOpinionRequest]
}

// NewOpinionService creates a new OpinionService.
func NewOpinionService(repo repositories.OpinionRepository, products repositories.ProductRepository, log *logger.Logger) *OpinionService {
	return &OpinionService{
		repo:     repo,
		products: products,
		log:      log.With("component", "opinion"),
		pipeline: validation.NewPipeline(
			validation.Exists("productId", "opinion.productId.notFound",
				func(r models.NewOpinionRequest) (string, bool) { return validation.String(r.ProductID) },
				products.ExistsByID),
		),
	}
}

// Create records the opinion of author about a product.
func (s *OpinionService) Create(ctx context.Context, req models.NewOpinionRequest, author *models.User) (*models.ProductOpinion, error) {
	if author == nil {
		return nil, ErrUserNotRegistered
	}
	if err := check(ctx, s.pipeline, req); err != nil {
		return nil, err
	}

	opinion := &models.ProductOpinion{
		Rating:      req.Rating,
		Title:       req.Title,
		Description: req.Description,
		ProductID:   req.ProductID,
		UserID:      author.ID,
	}
	if err := s.repo.Create(ctx, opinion); err != nil {
		if ok, lookupErr := s.products.ExistsByID(ctx, req.ProductID); lookupErr == nil && !ok {
			return nil, fmt.Errorf("%w: product %s", ErrReferenceNotFound, req.ProductID)
		}
		return nil, err
	}

	s.log.Info("opinion created", "opinion_id", opinion.ID, "product_id", opinion.ProductID, "rating", opinion.Rating)
	return opinion, nil
}
