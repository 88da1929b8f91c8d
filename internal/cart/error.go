package cart

import "errors"

var (
	// -- Validation & Input --
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("product out of stock")

	// -- Resource State --
	ErrCartEmpty = errors.New("cart is empty")
)
