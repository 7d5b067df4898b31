package cart

import (
	"context"

	domcart "example.com/cosmatic-storefront/app/internal/domain/cart"
)

type ctxStoreKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, ctxStoreKey{}, s)
}

// FromContext returns the store attached by NewContext. Reaching for a store
// that was never attached is a wiring bug, so it panics.
func FromContext(ctx context.Context) *Store {
	s, ok := ctx.Value(ctxStoreKey{}).(*Store)
	if !ok || s == nil {
		panic(domcart.ErrStoreNotInitialized)
	}
	return s
}
