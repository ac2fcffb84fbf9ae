package models

import "github.com/shopspring/decimal"

// NewCategoryRequest is the payload for registering a category.
// ID is optional; when absent the store assigns one.
type NewCategoryRequest struct {
	ID              *int64 `json:"id" validate:"omitempty,gt=0"`
	Name            string `json:"name" validate:"required,max=255"`
	SuperCategoryID *int64 `json:"superCategory"`
}

// NewUserRequest is the payload for registering a user.
type NewUserRequest struct {
	Login    string `json:"login" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// NewCharacteristicRequest describes one product characteristic.
type NewCharacteristicRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// NewProductRequest is the payload for registering a product.
type NewProductRequest struct {
	Name            string                     `json:"name" validate:"required,max=255"`
	Price           decimal.Decimal            `json:"price" validate:"gte=0.01"`
	StockQuantity   int                        `json:"stockQuantity" validate:"gte=0"`
	Photos          []string                   `json:"photos" validate:"min=1,dive,required"`
	Characteristics []NewCharacteristicRequest `json:"characteristics" validate:"min=3,unique=Name,dive"`
	Description     string                     `json:"description" validate:"max=1000"`
	CategoryID      *int64                     `json:"categoryId" validate:"required"`
}

// NewOpinionRequest is the payload for reviewing a product.
type NewOpinionRequest struct {
	Rating      int    `json:"rating" validate:"min=1,max=5"`
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"max=500"`
	ProductID   string `json:"productId" validate:"required"`
}

// NewQuestionRequest is the payload for asking the product owner a question.
// ProductID comes from the route, not the body.
type NewQuestionRequest struct {
	Title     string `json:"title" validate:"required,max=255"`
	ProductID string `json:"-"`
}

// NewPurchaseRequest is the payload for buying a product.
type NewPurchaseRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}
