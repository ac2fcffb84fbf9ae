// Package notifications reacts to marketplace events.
package notifications

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/logger"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/services"
)

// ErrMalformedEvent is returned for messages that can never be processed.
var ErrMalformedEvent = errors.New("malformed event")

// QuestionNotifier tells product owners about new questions. Delivery is a log entry.
type QuestionNotifier struct {
	log *logger.Logger
}

func NewQuestionNotifier(log *logger.Logger) *QuestionNotifier {
	return &QuestionNotifier{log: log.With("component", "question-notifier")}
}

// Handle processes one question.asked event body.
func (n *QuestionNotifier) Handle(body []byte) error {
	var event services.QuestionAskedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if event.Type != services.QuestionAsked {
		n.log.Debug("ignoring event", "type", event.Type)
		return nil
	}
	if event.OwnerEmail == "" {
		return fmt.Errorf("%w: question %d has no owner email", ErrMalformedEvent, event.QuestionID)
	}

	n.log.Info("notifying product owner",
		"to", event.OwnerEmail,
		"product_id", event.ProductID,
		"subject", fmt.Sprintf("New question about %s", event.ProductName),
		"question", event.Title,
		"asked_by", event.AskedBy,
	)
	return nil
}
