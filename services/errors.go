package services

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username or email already registered")

	ErrInvalidQuantity    = errors.New("quantity must be between 1 and 10")
	ErrInvalidPrice       = errors.New("price must be positive")
	ErrInvalidName        = errors.New("name must not be empty")
	ErrInvalidCoordinates = errors.New("invalid delivery coordinates")

	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidTransition = errors.New("invalid order status transition")

	ErrSelfPurchase      = errors.New("cannot buy your own product")
	ErrUnavailable       = errors.New("product is no longer available")
	ErrInsufficientFunds = errors.New("not enough budget")
)
