package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/logger"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/models"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/repositories"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/validation"

	"github.com/google/uuid"
)

// PurchaseReceipt is what the buyer gets back: where to pay for the reserved units.
type PurchaseReceipt struct {
	Purchase   *models.Purchase `json:"-"`
	PaymentURL string           `json:"paymentUrl"`
}

// PurchaseService turns product stock into committed purchases.
type PurchaseService struct {
	purchaseRepo repositories.PurchaseRepository
	productRepo  repositories.ProductRepository
	publisher    EventPublisher
	gatewayURL   string
	log          *logger.Logger
	pipeline     *validation.Pipeline[models.NewPurchaseRequest]
}

// NewPurchaseService creates a new PurchaseService. publisher may be nil.
func NewPurchaseService(purchaseRepo repositories.PurchaseRepository, productRepo repositories.ProductRepository, publisher EventPublisher, gatewayURL string, log *logger.Logger) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		publisher:    publisher,
		gatewayURL:   gatewayURL,
		log:          log.With("component", "purchase"),
		pipeline: validation.NewPipeline(
			validation.Exists("productId", "purchase.productId.notFound",
				func(r models.NewPurchaseRequest) (string, bool) { return validation.String(r.ProductID) },
				productRepo.ExistsByID),
		),
	}
}

// Reserve takes quantity units of the product for buyer and records the purchase.
// Either both happen or neither does; the stock never goes below zero.
func (s *PurchaseService) Reserve(ctx context.Context, productID string, quantity int, buyer *models.User) (*models.Purchase, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if buyer == nil {
		return nil, ErrUserNotRegistered
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
		}
		return nil, fmt.Errorf("failed to load product %s: %w", productID, err)
	}

	id := uuid.New().String()
	purchase := &models.Purchase{
		ID:           id,
		ProductID:    product.ID,
		BuyerID:      buyer.ID,
		Quantity:     quantity,
		UnitPrice:    product.Price,
		PaymentToken: models.PaymentTokenFor(id),
		CreatedAt:    time.Now(),
	}

	err = s.purchaseRepo.Reserve(ctx, purchase)
	switch {
	case errors.Is(err, repositories.ErrInsufficientStock):
		s.log.Info("purchase rejected, not enough stock", "product_id", productID, "quantity", quantity)
		return nil, fmt.Errorf("%w: product %s, requested %d", ErrOutOfStock, productID, quantity)
	case errors.Is(err, repositories.ErrNotFound):
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	case err != nil:
		return nil, fmt.Errorf("failed to reserve stock for product %s: %w", productID, err)
	}

	s.log.Info("stock reserved", "purchase_id", purchase.ID, "product_id", productID, "quantity", quantity, "buyer_id", buyer.ID)
	return purchase, nil
}

// Buy validates the request, reserves the stock and returns the payment handoff URL.
// redirectBase is where the gateway sends the buyer back to.
func (s *PurchaseService) Buy(ctx context.Context, req models.NewPurchaseRequest, buyer *models.User, redirectBase string) (*PurchaseReceipt, error) {
	if err := check(ctx, s.pipeline, req); err != nil {
		return nil, err
	}

	purchase, err := s.Reserve(ctx, req.ProductID, req.Quantity, buyer)
	if err != nil {
		return nil, err
	}

	publish(s.publisher, s.log, PurchaseEventsQueue, PurchaseCreatedEvent{
		Type:       PurchaseCreated,
		PurchaseID: purchase.ID,
		ProductID:  purchase.ProductID,
		BuyerID:    purchase.BuyerID,
		Quantity:   purchase.Quantity,
		Total:      purchase.Total(),
		CreatedAt:  purchase.CreatedAt,
	})

	return &PurchaseReceipt{
		Purchase:   purchase,
		PaymentURL: purchase.PaymentURL(s.gatewayURL, redirectBase),
	}, nil
}
