package checkout

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	domorder "example.com/cosmatic-storefront/app/internal/domain/order"
	"example.com/cosmatic-storefront/app/internal/domain/storage"
)

// History is the order repository of one session, kept in the "orders" slot.
// It reads the slot on every call, so a failed read is never mistaken for an
// empty history.
type History struct {
	slots  storage.Slots
	logger logrus.FieldLogger
}

func NewHistory(slots storage.Slots, logger logrus.FieldLogger) *History {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &History{slots: slots, logger: logger}
}

func (h *History) load(ctx context.Context) ([]domorder.Order, error) {
	raw, found, err := h.slots.Get(ctx, domorder.SlotKey)
	if err != nil {
		return nil, errors.Wrapf(storage.ErrUnavailable, "read orders: %v", err)
	}
	if !found {
		return nil, nil
	}
	var orders []domorder.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		h.logger.WithError(err).Warn("checkout: discarding unreadable order history")
		return nil, nil
	}
	return orders, nil
}

// Save appends order to the history.
func (h *History) Save(ctx context.Context, order domorder.Order) error {
	orders, err := h.load(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(append(orders, order))
	if err != nil {
		return errors.Wrap(err, "marshal orders")
	}
	return errors.Wrap(h.slots.Set(ctx, domorder.SlotKey, string(raw)), "write orders")
}

// List returns the orders newest first.
func (h *History) List(ctx context.Context) ([]domorder.Order, error) {
	orders, err := h.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domorder.Order, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- {
		out = append(out, orders[i])
	}
	return out, nil
}

func (h *History) GetByNumber(ctx context.Context, number string) (*domorder.Order, error) {
	orders, err := h.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].Number == number {
			return &orders[i], nil
		}
	}
	return nil, domorder.ErrOrderNotFound
}
