package contact

import (
	"context"
	"time"

	"example.com/cosmatic-storefront/app/internal/domain/locale"
)

type Message struct {
	Name       string
	Email      string
	Subject    string
	Body       string
	Locale     locale.Locale
	ReceivedAt time.Time
}

// Notifier delivers a contact message to the support team.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}
