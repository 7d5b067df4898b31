package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// SlotKey is the storage slot holding a session's order history.
const SlotKey = "orders"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusShipped   Status = "SHIPPED"
	StatusDelivered Status = "DELIVERED"
	StatusCanceled  Status = "CANCELED"
)

type PaymentMethod string

// PaymentCOD is settled on delivery, so checkout never talks to a payment provider.
const PaymentCOD PaymentMethod = "COD"

func (p PaymentMethod) IsValid() bool {
	return p == PaymentCOD
}

type ShippingAddress struct {
	FullName     string `json:"fullName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	Country      string `json:"country"`
	PostalCode   string `json:"postalCode,omitempty"`
	Phone        string `json:"phone"`
}

type Order struct {
	ID              string          `json:"id"`
	Number          string          `json:"orderNumber"`
	Status          Status          `json:"status"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	Currency        string          `json:"currency"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Items           []Item          `json:"items"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Item records a cart line as it was bought. PriceAtPurchase is the product's
// base price at checkout time.
type Item struct {
	ProductID       string          `json:"productId"`
	VariantID       string          `json:"variantId,omitempty"`
	TitleEN         string          `json:"title_en"`
	TitleAR         string          `json:"title_ar"`
	Quantity        int             `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"priceAtPurchase"`
}

func (i Item) LineTotal() decimal.Decimal {
	return i.PriceAtPurchase.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
