package services

import "errors"

// OutOfStockCode is the message key reported when a purchase asks for more units than are left.
const OutOfStockCode = "purchase.product.outOfStock"

var (
	ErrOutOfStock         = errors.New("product does not have enough units in stock")
	ErrProductNotFound    = errors.New("product not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrUserNotRegistered  = errors.New("user not registered")
	ErrReferenceNotFound  = errors.New("referenced record no longer exists")
	ErrInvalidQuantity    = errors.New("quantity must be greater than zero")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
