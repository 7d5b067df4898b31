package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	domcart "example.com/cosmatic-storefront/app/internal/domain/cart"
	domorder "example.com/cosmatic-storefront/app/internal/domain/order"
	domproduct "example.com/cosmatic-storefront/app/internal/domain/product"
)

type mockCart struct {
	items   []domcart.LineItem
	cleared bool
}

func (m *mockCart) Items() []domcart.LineItem {
	out := make([]domcart.LineItem, len(m.items))
	copy(out, m.items)
	return out
}

func (m *mockCart) Clear() {
	m.cleared = true
	m.items = nil
}

type mockOrderRepository struct {
	saved   []domorder.Order
	saveErr error
}

func (m *mockOrderRepository) Save(ctx context.Context, order domorder.Order) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, order)
	return nil
}

func (m *mockOrderRepository) List(ctx context.Context) ([]domorder.Order, error) {
	return m.saved, nil
}

func (m *mockOrderRepository) GetByNumber(ctx context.Context, number string) (*domorder.Order, error) {
	return nil, domorder.ErrOrderNotFound
}

func newTestService() *Service {
	logger, _ := test.NewNullLogger()
	svc := NewService(logger)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("AST", 3*3600)) }
	svc.newID = func() string { return "3f2a9c1d-0b4e-4c8a-9d2f-7e6b5a4c3d2e" }
	return svc
}

func line(id, price, variant string, qty int) domcart.LineItem {
	return domcart.LineItem{
		Product: domproduct.Product{
			ID:       id,
			TitleEN:  "Product " + id,
			TitleAR:  "منتج " + id,
			Price:    decimal.RequireFromString(price),
			Currency: "USD",
		},
		VariantID: variant,
		Quantity:  qty,
	}
}

var address = domorder.ShippingAddress{
	FullName:     "Layla Hassan",
	AddressLine1: "12 Corniche Rd",
	City:         "Dubai",
	Country:      "AE",
	Phone:        "+971500000000",
}

func TestCheckout_WithEmptyCart_ReturnsError(t *testing.T) {
	cart := &mockCart{}
	orders := &mockOrderRepository{}

	_, err := newTestService().Checkout(context.Background(), cart, orders, Request{PaymentMethod: domorder.PaymentCOD, ShippingAddress: address})

	require.ErrorIs(t, err, domorder.ErrEmptyOrderItems)
	require.Empty(t, orders.saved)
	require.False(t, cart.cleared)
}

func TestCheckout_WithInvalidPayment_ReturnsError(t *testing.T) {
	cart := &mockCart{items: []domcart.LineItem{line("p1", "10", "", 1)}}

	_, err := newTestService().Checkout(context.Background(), cart, &mockOrderRepository{}, Request{PaymentMethod: "TAMARA"})

	require.ErrorIs(t, err, domorder.ErrInvalidPayment)
	require.False(t, cart.cleared)
}

func TestCheckout_CreatesPendingOrderAndClearsCart(t *testing.T) {
	cart := &mockCart{items: []domcart.LineItem{
		line("p1", "10", "", 2),
		line("p3", "34", "p3-v2", 3),
	}}
	orders := &mockOrderRepository{}

	order, err := newTestService().Checkout(context.Background(), cart, orders, Request{PaymentMethod: domorder.PaymentCOD, ShippingAddress: address})

	require.NoError(t, err)
	require.Equal(t, "ORD-3F2A9C1D", order.Number)
	require.Equal(t, domorder.StatusPending, order.Status)
	require.Equal(t, "USD", order.Currency)
	require.True(t, decimal.NewFromInt(122).Equal(order.TotalAmount))
	require.Equal(t, time.UTC, order.CreatedAt.Location())
	require.Equal(t, address, order.ShippingAddress)

	require.Len(t, order.Items, 2)
	require.Equal(t, "p3-v2", order.Items[1].VariantID)
	require.Equal(t, 3, order.Items[1].Quantity)
	require.True(t, decimal.NewFromInt(34).Equal(order.Items[1].PriceAtPurchase))

	require.Len(t, orders.saved, 1)
	require.Equal(t, order.Number, orders.saved[0].Number)
	require.True(t, cart.cleared)
}

func TestCheckout_SaveFailureKeepsCart(t *testing.T) {
	cart := &mockCart{items: []domcart.LineItem{line("p1", "10", "", 1)}}
	orders := &mockOrderRepository{saveErr: errors.New("redis down")}

	_, err := newTestService().Checkout(context.Background(), cart, orders, Request{PaymentMethod: domorder.PaymentCOD, ShippingAddress: address})

	require.Error(t, err)
	require.False(t, cart.cleared)
	require.Len(t, cart.items, 1)
}

func TestOrderNumber(t *testing.T) {
	require.Equal(t, "ORD-ABCDEF01", orderNumber("abcdef01-2345-6789-abcd-ef0123456789"))
	require.Equal(t, "ORD-AB", orderNumber("ab"))
}
