package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/logger"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/models"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/repositories"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/validation"

	"github.com/shopspring/decimal"
)

// ProductDetails is the product page: the product plus what users said and asked about it.
type ProductDetails struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	Price           decimal.Decimal         `json:"price"`
	StockQuantity   int                     `json:"stockQuantity"`
	Description     string                  `json:"description"`
	Category        string                  `json:"category,omitempty"`
	Photos          []string                `json:"photos"`
	Characteristics []models.Characteristic `json:"characteristics"`
	Opinions        []models.ProductOpinion `json:"opinions"`
	OpinionCount    int                     `json:"opinionCount"`
	AverageRating   float64                 `json:"averageRating"`
	Questions       []models.Question       `json:"questions"`
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo       repositories.ProductRepository
	categories repositories.CategoryRepository
	opinions   repositories.OpinionRepository
	questions  repositories.QuestionRepository
	log        *logger.Logger
	pipeline   *validation.Pipeline[models.NewProductRequest]
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, categories repositories.CategoryRepository, opinions repositories.OpinionRepository, questions repositories.QuestionRepository, log *logger.Logger) *ProductService {
	return &ProductService{
		repo:       repo,
		categories: categories,
		opinions:   opinions,
		questions:  questions,
		log:        log.With("component", "product"),
		pipeline: validation.NewPipeline(
			validation.Exists("categoryId", "product.categoryId.notFound",
				func(r models.NewProductRequest) (int64, bool) { return validation.Int64(r.CategoryID) },
				categories.ExistsByID),
		),
	}
}

// Create registers a product owned by owner.
func (s *ProductService) Create(ctx context.Context, req models.NewProductRequest, owner *models.User) (*models.Product, error) {
	if owner == nil {
		return nil, ErrUserNotRegistered
	}
	if err := check(ctx, s.pipeline, req); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:          req.Name,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Description:   req.Description,
		CategoryID:    *req.CategoryID,
		OwnerID:       owner.ID,
	}
	for _, url := range req.Photos {
		product.Photos = append(product.Photos, models.Photo{URL: url})
	}
	for _, c := range req.Characteristics {
		product.Characteristics = append(product.Characteristics, models.Characteristic{Name: c.Name, Description: c.Description})
	}

	if err := s.repo.Create(ctx, product); err != nil {
		if ok, lookupErr := s.categories.ExistsByID(ctx, product.CategoryID); lookupErr == nil && !ok {
			return nil, fmt.Errorf("%w: category %d", ErrReferenceNotFound, product.CategoryID)
		}
		return nil, err
	}

	s.log.Info("product created", "product_id", product.ID, "owner_id", owner.ID, "stock", product.StockQuantity)
	return product, nil
}

// Details assembles the product page.
func (s *ProductService) Details(ctx context.Context, id string) (*ProductDetails, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
		}
		return nil, err
	}

	opinions, err := s.opinions.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	questions, err := s.questions.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &ProductDetails{
		ID:              product.ID,
		Name:            product.Name,
		Price:           product.Price,
		StockQuantity:   product.StockQuantity,
		Description:     product.Description,
		Photos:          make([]string, 0, len(product.Photos)),
		Characteristics: product.Characteristics,
		Opinions:        opinions,
		OpinionCount:    len(opinions),
		AverageRating:   averageRating(opinions),
		Questions:       questions,
	}
	if product.Category != nil {
		details.Category = product.Category.Name
	}
	for _, p := range product.Photos {
		details.Photos = append(details.Photos, p.URL)
	}
	return details, nil
}

// averageRating is rounded to two places; a product without opinions rates 0.
func averageRating(opinions []models.ProductOpinion) float64 {
	if len(opinions) == 0 {
		return 0
	}
	sum := 0
	for _, o := range opinions {
		sum += o.Rating
	}
	avg, _ := decimal.NewFromInt(int64(sum)).
		DivRound(decimal.NewFromInt(int64(len(opinions))), 2).
		Float64()
	return avg
}
