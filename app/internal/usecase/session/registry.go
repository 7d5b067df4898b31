package session

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	domcart "example.com/cosmatic-storefront/app/internal/domain/cart"
	"example.com/cosmatic-storefront/app/internal/domain/storage"
	cartuc "example.com/cosmatic-storefront/app/internal/usecase/cart"
	"example.com/cosmatic-storefront/app/internal/usecase/checkout"
	wishlistuc "example.com/cosmatic-storefront/app/internal/usecase/wishlist"
)

// Session owns the stores of one browser session. Callers hold Lock while
// using the stores, which keeps each store single-writer.
type Session struct {
	ID       string
	Cart     *cartuc.Store
	Wishlist *wishlistuc.Store
	Orders   *checkout.History

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Registry hands out sessions, hydrating their stores from a shared backend
// on first use. Evicted sessions are rebuilt from storage on the next visit.
type Registry struct {
	backend storage.Slots
	logger  logrus.FieldLogger
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(backend storage.Slots, logger logrus.FieldLogger) *Registry {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Registry{
		backend:  backend,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// loadTimeout bounds hydrating a new session from the backend.
const loadTimeout = 3 * time.Second

func slotPrefix(id string) string {
	return "session:" + id + ":"
}

// Open returns the session with the given id, hydrating it if needed. The
// backend is read outside the registry lock and without the caller's
// cancellation. A session whose slots could not be read is not kept, so the
// next Open retries instead of serving an empty cart over saved data.
func (r *Registry) Open(ctx context.Context, id string) (*Session, error) {
	if s := r.lookup(id); s != nil {
		return s, nil
	}

	log := r.logger.WithField("session_id", id)
	loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
	defer cancel()

	slots := storage.WithPrefix(r.backend, slotPrefix(id))
	cart := cartuc.NewStore(loadCtx, slots, log)
	if err := cart.LoadErr(); err != nil {
		return nil, errors.Wrapf(err, "open session %s", id)
	}
	wishlist := wishlistuc.NewStore(loadCtx, slots, log)
	if err := wishlist.LoadErr(); err != nil {
		return nil, errors.Wrapf(err, "open session %s", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok {
		s.lastSeen = r.now()
		return s, nil
	}
	s := &Session{
		ID:       id,
		Cart:     cart,
		Wishlist: wishlist,
		Orders:   checkout.NewHistory(slots, log),
		lastSeen: r.now(),
	}
	s.Cart.Subscribe(func(items []domcart.LineItem) {
		log.WithField("lines", len(items)).Debug("cart changed")
	})
	r.sessions[id] = s
	log.Debug("session opened")
	return s, nil
}

func (r *Registry) lookup(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil
	}
	s.lastSeen = r.now()
	return s
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than maxIdle and returns how many went.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxIdle)
	removed := 0
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps idle sessions every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := r.Sweep(maxIdle); n > 0 {
				r.logger.WithField("evicted", n).Info("idle sessions evicted")
			}
		case <-ctx.Done():
			return
		}
	}
}
