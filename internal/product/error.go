package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")

	ErrFailedListProducts = errors.New("failed to list products")
	ErrFailedGetProduct   = errors.New("failed to get product")
)
