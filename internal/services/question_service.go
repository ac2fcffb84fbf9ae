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

// QuestionService lets users ask product owners about their products.
type QuestionService struct {
	repo      repositories.QuestionRepository
	products  repositories.ProductRepository
	publisher EventPublisher
	log       *logger.Logger
	pipeline  *validation.Pipeline[models.NewQuestionRequest]
}

// NewQuestionService creates a new QuestionService. publisher may be nil.
func NewQuestionService(repo repositories.QuestionRepository, products repositories.ProductRepository, publisher EventPublisher, log *logger.Logger) *QuestionService {
	return &QuestionService{
		repo:      repo,
		products:  products,
		publisher: publisher,
		log:       log.With("component", "question"),
		pipeline: validation.NewPipeline(
			validation.Exists("productId", "question.productId.notFound",
				func(r models.NewQuestionRequest) (string, bool) { return validation.String(r.ProductID) },
				products.ExistsByID),
		),
	}
}

// Ask stores the question, notifies the product owner and returns every question of the product.
func (s *QuestionService) Ask(ctx context.Context, req models.NewQuestionRequest, author *models.User) (*models.Question, []models.Question, error) {
	if author == nil {
		return nil, nil, ErrUserNotRegistered
	}
	if err := check(ctx, s.pipeline, req); err != nil {
		return nil, nil, err
	}

	product, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: product %s", ErrReferenceNotFound, req.ProductID)
		}
		return nil, nil, err
	}

	question := &models.Question{
		Title:     req.Title,
		ProductID: product.ID,
		UserID:    author.ID,
	}
	if err := s.repo.Create(ctx, question); err != nil {
		return nil, nil, err
	}

	event := QuestionAskedEvent{
		Type:        QuestionAsked,
		QuestionID:  question.ID,
		Title:       question.Title,
		ProductID:   product.ID,
		ProductName: product.Name,
		AskedBy:     author.Email,
		CreatedAt:   question.CreatedAt,
	}
	if product.Owner != nil {
		event.OwnerEmail = product.Owner.Email
	}
	publish(s.publisher, s.log, QuestionEventsQueue, event)

	questions, err := s.repo.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, nil, err
	}
	return question, questions, nil
}
