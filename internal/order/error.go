package order

import "errors"

var (
	// -- Authentication/Authorization --
	ErrUserNotAuthenticated = errors.New("user not authenticated")

	// -- Validation & Input --
	ErrCartEmpty             = errors.New("cart is empty")
	ErrMissingCheckoutFields = errors.New("missing required checkout fields")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrInvalidTransition     = errors.New("invalid status transition")

	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")

	// -- Database & Operation Failures --
	ErrFailedCreateOrder = errors.New("failed to create order")
	ErrFailedGetOrders   = errors.New("failed to get orders")
)
