// Package mail delivers contact form submissions over SMTP.
package mail

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
)

// ErrNotConfigured is returned when SMTP credentials are missing.
var ErrNotConfigured = errors.New("SMTP credentials not configured")

// Contact is one contact form submission.
type Contact struct {
	Name    string
	Email   string
	Message string
}

// Sender delivers contact submissions.
type Sender interface {
	Send(ctx context.Context, c Contact) error
}

// SendFunc matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTP sends mail through an SMTP relay.
type SMTP struct {
	cfg    config.SMTP
	send   SendFunc
	logger *zap.Logger
}

// NewSMTP returns a sender for cfg. A nil send uses smtp.SendMail.
func NewSMTP(cfg config.SMTP, send SendFunc, logger *zap.Logger) *SMTP {
	if send == nil {
		send = smtp.SendMail
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SMTP{cfg: cfg, send: send, logger: logger}
}

// Send delivers c. smtp.SendMail cannot be cancelled, so ctx is only
// checked before dialing.
func (m *SMTP) Send(ctx context.Context, c Contact) error {
	if !m.cfg.Configured() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := Compose(m.cfg.User, m.cfg.To, c)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	if err := m.send(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.User, []string{m.cfg.To}, msg); err != nil {
		m.logger.Error("sending email", zap.Error(err))
		return fmt.Errorf("send mail: %w", err)
	}

	m.logger.Info("email sent", zap.String("from_name", c.Name))
	return nil
}

// Compose renders the RFC 5322 message for c.
func Compose(from, to string, c Contact) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", oneLine(c.Name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, oneLine(c.Name), oneLine(c.Email), c.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + oneLine(c.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// oneLine strips CR and LF so user input cannot inject headers.
func oneLine(s string) string {
	return strings.NewReplacer("\r", "", "\n", " ").Replace(s)
}
