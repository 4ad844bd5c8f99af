package utils

import "errors"

var (
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrMenuNotFound        = errors.New("menu not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrAccountNotConnected = errors.New("restaurant is not connected to a payment account yet")
	ErrAccountNotCreated   = errors.New("payment account not created")
	ErrProcessorRejected   = errors.New("payment processor rejected the request")
	ErrTokenCollision      = errors.New("public token collision, retry the request")
	ErrValidationFailed    = errors.New("validation failed")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrDatabaseError       = errors.New("database error")
)
