package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("product out of stock")
	ErrVariantNotFound = errors.New("variant not found for product")
	ErrInvalidSort     = errors.New("invalid sort order")
	ErrInvalidStep     = errors.New("invalid routine step")
)
