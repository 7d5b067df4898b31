package mail

import (
	"bytes"
	"context"
	"net/smtp"
	"strings"
	"text/template"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	domcontact "example.com/cosmatic-storefront/app/internal/domain/contact"
)

var bodyTemplate = template.Must(template.New("contact").Parse(
	"From: {{.Name}} <{{.Email}}>\r\n" +
		"Locale: {{.Locale}}\r\n" +
		"Received: {{.ReceivedAt.Format \"2006-01-02T15:04:05Z07:00\"}}\r\n" +
		"\r\n" +
		"{{.Body}}\r\n"))

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier relays contact messages to the support mailbox. Mailpit is
// enough in development: it accepts mail without authentication.
type SMTPNotifier struct {
	addr string
	from string
	to   string
	send sendFunc
}

func NewSMTPNotifier(addr, from, to string) *SMTPNotifier {
	return &SMTPNotifier{addr: addr, from: from, to: to, send: smtp.SendMail}
}

func (n *SMTPNotifier) Notify(ctx context.Context, msg domcontact.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := n.compose(msg)
	if err != nil {
		return err
	}
	if err := n.send(n.addr, nil, n.from, []string{n.to}, raw); err != nil {
		return errors.Wrapf(err, "smtp send via %s", n.addr)
	}
	return nil
}

func (n *SMTPNotifier) compose(msg domcontact.Message) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("From: " + n.from + "\r\n")
	buf.WriteString("To: " + n.to + "\r\n")
	buf.WriteString("Reply-To: " + headerValue(msg.Email) + "\r\n")
	buf.WriteString("Subject: [Contact] " + headerValue(msg.Subject) + "\r\n")
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	if err := bodyTemplate.Execute(&buf, msg); err != nil {
		return nil, errors.Wrap(err, "render contact mail")
	}
	return buf.Bytes(), nil
}

// headerValue strips line breaks so user input cannot add headers.
func headerValue(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

// LogNotifier writes contact messages to the log instead of sending them.
type LogNotifier struct {
	logger logrus.FieldLogger
}

func NewLogNotifier(logger logrus.FieldLogger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, msg domcontact.Message) error {
	n.logger.WithFields(logrus.Fields{
		"name":    msg.Name,
		"email":   msg.Email,
		"subject": msg.Subject,
		"locale":  msg.Locale,
	}).Info("contact message received")
	return nil
}
