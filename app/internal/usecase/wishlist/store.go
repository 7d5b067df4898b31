package wishlist

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"example.com/cosmatic-storefront/app/internal/domain/storage"
	domwishlist "example.com/cosmatic-storefront/app/internal/domain/wishlist"
)

const writeTimeout = 2 * time.Second

// Store keeps the product ids a session has saved for later, persisted to
// the "wishlist" slot after each change.
type Store struct {
	storage storage.Slots
	logger  logrus.FieldLogger
	ids     []string
	loadErr error
}

func NewStore(ctx context.Context, slots storage.Slots, logger logrus.FieldLogger) *Store {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s := &Store{storage: slots, logger: logger, ids: []string{}}

	raw, found, err := slots.Get(ctx, domwishlist.SlotKey)
	switch {
	case err != nil:
		s.loadErr = errors.Wrapf(storage.ErrUnavailable, "read wishlist: %v", err)
		logger.WithError(err).Warn("wishlist: failed to read persisted wishlist, starting empty")
	case found:
		ids, err := decode(raw)
		if err != nil {
			logger.WithError(err).Warn("wishlist: discarding persisted wishlist")
			break
		}
		s.ids = ids
	}
	return s
}

func decode(raw string) ([]string, error) {
	var w domwishlist.Wishlist
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return nil, errors.Wrap(err, "unmarshal wishlist")
	}
	ids := make([]string, 0, len(w.ProductIDs))
	seen := make(map[string]struct{}, len(w.ProductIDs))
	for _, id := range w.ProductIDs {
		if id == "" {
			return nil, errors.New("wishlist contains an empty product id")
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

// Add saves productID. It reports false when the product was already saved.
func (s *Store) Add(productID string) bool {
	if s.Contains(productID) {
		return false
	}
	s.ids = append(s.ids, productID)
	s.persist()
	return true
}

func (s *Store) Remove(productID string) error {
	for i, id := range s.ids {
		if id == productID {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
			s.persist()
			return nil
		}
	}
	return domwishlist.ErrNotInWishlist
}

func (s *Store) Contains(productID string) bool {
	for _, id := range s.ids {
		if id == productID {
			return true
		}
	}
	return false
}

func (s *Store) ProductIDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// LoadErr reports a failed read of the persisted wishlist.
func (s *Store) LoadErr() error {
	return s.loadErr
}

func (s *Store) persist() {
	if s.loadErr != nil {
		s.logger.Warn("wishlist: persisted wishlist was never read, skipping write-back")
		return
	}
	raw, err := json.Marshal(domwishlist.Wishlist{ProductIDs: s.ids})
	if err != nil {
		s.logger.WithError(err).Warn("wishlist: failed to encode wishlist")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := s.storage.Set(ctx, domwishlist.SlotKey, string(raw)); err != nil {
		s.logger.WithError(err).Warn("wishlist: write-back failed")
	}
}
