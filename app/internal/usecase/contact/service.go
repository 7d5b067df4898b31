package contact

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	dom "example.com/cosmatic-storefront/app/internal/domain/contact"
)

type Service struct {
	notifier dom.Notifier
	logger   logrus.FieldLogger
	now      func() time.Time
}

func NewService(notifier dom.Notifier, logger logrus.FieldLogger) *Service {
	return &Service{notifier: notifier, logger: logger, now: time.Now}
}

func (s *Service) Submit(ctx context.Context, msg dom.Message) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Body = strings.TrimSpace(msg.Body)
	msg.ReceivedAt = s.now().UTC()

	if err := s.notifier.Notify(ctx, msg); err != nil {
		s.logger.WithError(err).WithField("email", msg.Email).Error("contact: delivery failed")
		return errors.Wrap(dom.ErrDeliveryFailed, err.Error())
	}
	s.logger.WithField("email", msg.Email).Info("contact: message relayed")
	return nil
}
