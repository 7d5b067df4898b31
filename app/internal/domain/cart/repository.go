package cart

import "example.com/cosmatic-storefront/app/internal/domain/storage"

// Storage is the durable slot a cart is hydrated from and written back to.
type Storage interface {
	storage.Slots
}
