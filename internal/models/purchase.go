package models

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is the committed result of a stock reservation. It is never updated.
type Purchase struct {
	ID           string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID    string          `json:"productId" gorm:"type:varchar(36);index;not null"`
	BuyerID      int64           `json:"buyerId" gorm:"index;not null"`
	Quantity     int             `json:"quantity" gorm:"not null"`
	UnitPrice    decimal.Decimal `json:"unitPrice" gorm:"type:decimal(12,2);not null"` // Price at the time of purchase
	PaymentToken string          `json:"-" gorm:"type:varchar(64);not null"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// PaymentTokenFor derives the opaque gateway token of a purchase. It is not signed.
func PaymentTokenFor(purchaseID string) string {
	return strings.ReplaceAll(purchaseID, "-", "")
}

// Total is quantity times the unit price.
func (p *Purchase) Total() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// PaymentURL builds the gateway handoff URL; the gateway sends the buyer back to redirectBase.
func (p *Purchase) PaymentURL(gatewayURL, redirectBase string) string {
	redirect := strings.TrimRight(redirectBase, "/") + "/" + p.ID
	return fmt.Sprintf("%s?token=%s&redirectUrl=%s",
		strings.TrimRight(gatewayURL, "/"), p.PaymentToken, url.QueryEscape(redirect))
}
