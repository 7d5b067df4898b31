package cart

import "errors"

var (
	ErrStoreNotInitialized = errors.New("cart store used before initialization")
	ErrInvalidSnapshot     = errors.New("invalid cart snapshot")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
)
