package services

import (
	"time"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/logger"

	"github.com/shopspring/decimal"
)

// Queues events are published to.
const (
	PurchaseEventsQueue = "purchase_events"
	QuestionEventsQueue = "question_events"
)

// Event types.
const (
	PurchaseCreated = "purchase.created"
	QuestionAsked   = "question.asked"
)

// EventPublisher sends an event, encoded as JSON, to a queue.
type EventPublisher interface {
	Publish(queue string, event interface{}) error
}

// PurchaseCreatedEvent is published after stock was reserved.
type PurchaseCreatedEvent struct {
	Type       string          `json:"type"`
	PurchaseID string          `json:"purchaseId"`
	ProductID  string          `json:"productId"`
	BuyerID    int64           `json:"buyerId"`
	Quantity   int             `json:"quantity"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// QuestionAskedEvent tells the product owner someone asked about the product.
type QuestionAskedEvent struct {
	Type        string    `json:"type"`
	QuestionID  int64     `json:"questionId"`
	Title       string    `json:"title"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	OwnerEmail  string    `json:"ownerEmail"`
	AskedBy     string    `json:"askedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// publish is best effort: the write it reports on is already committed.
func publish(pub EventPublisher, log *logger.Logger, queue string, event interface{}) {
	if pub == nil {
		log.Debug("messaging disabled, event not published", "queue", queue)
		return
	}
	if err := pub.Publish(queue, event); err != nil {
		log.Warn("failed to publish event", "queue", queue, "error", err)
		return
	}
	log.Debug("event published", "queue", queue)
}
