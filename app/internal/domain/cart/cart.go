package cart

import (
	"github.com/shopspring/decimal"

	domproduct "example.com/cosmatic-storefront/app/internal/domain/product"
)

// SlotKey is the storage slot holding a session's cart snapshot.
const SlotKey = "cart"

// Key identifies a line item. An empty VariantID means the base product.
type Key struct {
	ProductID string
	VariantID string
}

type LineItem struct {
	Product   domproduct.Product `json:"product"`
	VariantID string             `json:"variantId,omitempty"`
	Quantity  int                `json:"quantity"`
}

func (i LineItem) Key() Key {
	return Key{ProductID: i.Product.ID, VariantID: i.VariantID}
}

// LineTotal uses the product's base price; variant price overrides are not applied.
func (i LineItem) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
