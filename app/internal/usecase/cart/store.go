package cart

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	domcart "example.com/cosmatic-storefront/app/internal/domain/cart"
	domproduct "example.com/cosmatic-storefront/app/internal/domain/product"
	domstorage "example.com/cosmatic-storefront/app/internal/domain/storage"
)

// writeTimeout bounds a single write-back to the storage slot.
const writeTimeout = 2 * time.Second

// Listener receives a copy of the items after every completed mutation.
type Listener func(items []domcart.LineItem)

// Store is the authoritative cart of one session. It is single-writer:
// callers must not invoke it from several goroutines at once.
type Store struct {
	storage domcart.Storage
	logger  logrus.FieldLogger

	items     []domcart.LineItem
	listeners map[int]Listener
	nextID    int
	ready     bool
	loadErr   error
}

// NewStore builds a store and hydrates it from the "cart" slot. A missing,
// unreadable or invalid snapshot yields an empty cart; hydration never writes.
// When the slot could not be read at all, LoadErr reports it and the store
// stops writing back so the unseen snapshot is not overwritten.
func NewStore(ctx context.Context, storage domcart.Storage, logger logrus.FieldLogger) *Store {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s := &Store{
		storage:   storage,
		logger:    logger,
		items:     []domcart.LineItem{},
		listeners: make(map[int]Listener),
	}
	s.hydrate(ctx)
	s.ready = true
	return s
}

func (s *Store) hydrate(ctx context.Context) {
	raw, found, err := s.storage.Get(ctx, domcart.SlotKey)
	if err != nil {
		s.loadErr = errors.Wrapf(domstorage.ErrUnavailable, "read cart: %v", err)
		s.logger.WithError(err).Warn("cart: failed to read persisted cart, starting empty")
		return
	}
	if !found {
		return
	}
	items, err := decodeSnapshot(raw)
	if err != nil {
		s.logger.WithError(err).Warn("cart: discarding persisted cart")
		return
	}
	s.items = items
}

// LoadErr reports a failed read of the persisted cart. It is nil for a
// missing or discarded snapshot.
func (s *Store) LoadErr() error {
	s.mustBeReady()
	return s.loadErr
}

func (s *Store) mustBeReady() {
	if s == nil || !s.ready {
		panic(domcart.ErrStoreNotInitialized)
	}
}

// Add puts one unit of product into the cart.
func (s *Store) Add(product domproduct.Product, variantID string) {
	s.AddItem(product, variantID, 1)
}

// AddItem merges quantity into the line with the same (product, variant) key,
// or appends a new line. Non-positive quantities are rejected.
func (s *Store) AddItem(product domproduct.Product, variantID string, quantity int) {
	s.mustBeReady()
	if quantity < 1 {
		s.logger.WithFields(logrus.Fields{
			"product_id": product.ID,
			"variant_id": variantID,
			"quantity":   quantity,
		}).Warn(domcart.ErrInvalidQuantity.Error())
		return
	}

	key := domcart.Key{ProductID: product.ID, VariantID: variantID}
	if i := s.indexOf(key); i >= 0 {
		s.items[i].Quantity += quantity
	} else {
		s.items = append(s.items, domcart.LineItem{
			Product:   product,
			VariantID: variantID,
			Quantity:  quantity,
		})
	}
	s.commit()
}

// RemoveItem deletes the matching line. Missing lines are ignored.
func (s *Store) RemoveItem(productID, variantID string) {
	s.mustBeReady()
	i := s.indexOf(domcart.Key{ProductID: productID, VariantID: variantID})
	if i >= 0 {
		s.items = append(s.items[:i:i], s.items[i+1:]...)
	}
	s.commit()
}

// UpdateQuantity sets the quantity of an existing line. A quantity below one
// removes the line; a missing line is never created.
func (s *Store) UpdateQuantity(productID string, quantity int, variantID string) {
	s.mustBeReady()
	if quantity < 1 {
		s.RemoveItem(productID, variantID)
		return
	}
	if i := s.indexOf(domcart.Key{ProductID: productID, VariantID: variantID}); i >= 0 {
		s.items[i].Quantity = quantity
	}
	s.commit()
}

// Clear empties the cart and deletes its slot, so the next hydration starts
// from nothing.
func (s *Store) Clear() {
	s.mustBeReady()
	s.items = []domcart.LineItem{}
	s.erase()
	s.notify()
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []domcart.LineItem {
	s.mustBeReady()
	out := make([]domcart.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) TotalItems() int {
	s.mustBeReady()
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

func (s *Store) Subtotal() decimal.Decimal {
	s.mustBeReady()
	subtotal := decimal.Zero
	for _, item := range s.items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return subtotal
}

// Subscribe registers l and returns a func that unregisters it.
func (s *Store) Subscribe(l Listener) func() {
	s.mustBeReady()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return func() {
		delete(s.listeners, id)
	}
}

func (s *Store) indexOf(key domcart.Key) int {
	for i, item := range s.items {
		if item.Key() == key {
			return i
		}
	}
	return -1
}

func (s *Store) commit() {
	s.persist()
	s.notify()
}

func (s *Store) notify() {
	if len(s.listeners) == 0 {
		return
	}
	snapshot := s.Items()
	for _, l := range s.listeners {
		l(snapshot)
	}
}

func (s *Store) persist() {
	if s.loadErr != nil {
		s.logger.Warn("cart: persisted cart was never read, skipping write-back")
		return
	}
	raw, err := encodeSnapshot(s.items)
	if err != nil {
		s.logger.WithError(err).Warn("cart: failed to encode cart")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := s.storage.Set(ctx, domcart.SlotKey, raw); err != nil {
		s.logger.WithError(err).Warn("cart: write-back failed, keeping in-memory state")
	}
}

func (s *Store) erase() {
	if s.loadErr != nil {
		s.logger.Warn("cart: persisted cart was never read, skipping delete")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := s.storage.Delete(ctx, domcart.SlotKey); err != nil {
		s.logger.WithError(err).Warn("cart: failed to delete cart slot, keeping in-memory state")
	}
}
