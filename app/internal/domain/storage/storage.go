package storage

import (
	"context"
	"errors"
)

// ErrUnavailable marks a slot that could not be read, as opposed to one that
// was never written.
var ErrUnavailable = errors.New("slot storage unavailable")

// Slots is a durable key-value store of whole string snapshots.
type Slots interface {
	// Get reports found=false when the key has never been written.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

type namespaced struct {
	base   Slots
	prefix string
}

// WithPrefix scopes every key of base under prefix, so that several
// sessions can share one backend while each still uses fixed slot names.
func WithPrefix(base Slots, prefix string) Slots {
	return &namespaced{base: base, prefix: prefix}
}

func (n *namespaced) Get(ctx context.Context, key string) (string, bool, error) {
	return n.base.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key string, value string) error {
	return n.base.Set(ctx, n.prefix+key, value)
}

func (n *namespaced) Delete(ctx context.Context, key string) error {
	return n.base.Delete(ctx, n.prefix+key)
}
