package checkout

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	domcart "example.com/cosmatic-storefront/app/internal/domain/cart"
	domorder "example.com/cosmatic-storefront/app/internal/domain/order"
)

// Cart is the part of the cart store checkout needs.
type Cart interface {
	Items() []domcart.LineItem
	Clear()
}

type Request struct {
	PaymentMethod   domorder.PaymentMethod
	ShippingAddress domorder.ShippingAddress
}

type Service struct {
	logger logrus.FieldLogger
	now    func() time.Time
	newID  func() string
}

func NewService(logger logrus.FieldLogger) *Service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// orderNumber derives the customer-facing "ORD-XXXXXXXX" number from an order id.
func orderNumber(id string) string {
	hex := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(hex) > 8 {
		hex = hex[:8]
	}
	return "ORD-" + hex
}

// Checkout turns the cart into a pending order, saves it and empties the cart.
// The cart is left untouched when the order cannot be saved.
func (s *Service) Checkout(ctx context.Context, cart Cart, orders domorder.Repository, req Request) (*domorder.Order, error) {
	if !req.PaymentMethod.IsValid() {
		return nil, domorder.ErrInvalidPayment
	}

	lines := cart.Items()
	if len(lines) == 0 {
		return nil, domorder.ErrEmptyOrderItems
	}

	id := s.newID()
	order := domorder.Order{
		ID:              id,
		Number:          orderNumber(id),
		Status:          domorder.StatusPending,
		PaymentMethod:   req.PaymentMethod,
		Currency:        lines[0].Product.Currency,
		TotalAmount:     decimal.Zero,
		ShippingAddress: req.ShippingAddress,
		Items:           make([]domorder.Item, 0, len(lines)),
		CreatedAt:       s.now().UTC(),
	}
	for _, line := range lines {
		item := domorder.Item{
			ProductID:       line.Product.ID,
			VariantID:       line.VariantID,
			TitleEN:         line.Product.TitleEN,
			TitleAR:         line.Product.TitleAR,
			Quantity:        line.Quantity,
			PriceAtPurchase: line.Product.Price,
		}
		order.Items = append(order.Items, item)
		order.TotalAmount = order.TotalAmount.Add(item.LineTotal())
	}

	if err := orders.Save(ctx, order); err != nil {
		s.logger.WithError(err).WithField("order_number", order.Number).Error("checkout: failed to save order")
		return nil, err
	}
	cart.Clear()

	s.logger.WithFields(logrus.Fields{
		"order_number": order.Number,
		"lines":        len(order.Items),
		"total":        order.TotalAmount.String(),
	}).Info("order placed")
	return &order, nil
}
