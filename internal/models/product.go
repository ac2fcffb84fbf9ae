package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product in the store.
// StockQuantity only changes through a purchase reservation.
type Product struct {
	ID              string           `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name            string           `json:"name" gorm:"type:varchar(255);not null"`
	Price           decimal.Decimal  `json:"price" gorm:"type:decimal(12,2);not null"`
	StockQuantity   int              `json:"stockQuantity" gorm:"not null"`
	Description     string           `json:"description" gorm:"type:varchar(1000)"`
	CategoryID      int64            `json:"categoryId" gorm:"index;not null"`
	Category        *Category        `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	OwnerID         int64            `json:"ownerId" gorm:"index;not null"`
	Owner           *User            `json:"-" gorm:"foreignKey:OwnerID"`
	Photos          []Photo          `json:"photos" gorm:"foreignKey:ProductID"`
	Characteristics []Characteristic `json:"characteristics" gorm:"foreignKey:ProductID"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// Photo is a product picture. Position keeps the order the owner sent them in.
type Photo struct {
	ID        int64  `json:"-" gorm:"primaryKey"`
	ProductID string `json:"-" gorm:"type:varchar(36);index;not null"`
	URL       string `json:"url" gorm:"type:varchar(2048);not null"`
	Position  int    `json:"-"`
}

// Characteristic is a name/description pair fixed when the product is created.
type Characteristic struct {
	ID          int64  `json:"-" gorm:"primaryKey"`
	ProductID   string `json:"-" gorm:"type:varchar(36);index;not null"`
	Name        string `json:"name" gorm:"type:varchar(255);not null"`
	Description string `json:"description" gorm:"type:varchar(1000);not null"`
}
