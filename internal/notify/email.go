package notify

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/fleetsense/fleetsense/internal/alert"
)

// defaultSMTPServer is the relay label used when none is configured.
const defaultSMTPServer = "smtp.example.com"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is the email delivery channel. Delivery is simulated: the alert is
// logged with the relay and recipient instead of speaking SMTP.
type Email struct {
	to     string
	server string
}

// NewEmail creates an Email channel for the given recipient address.
// An empty server falls back to the default relay label.
func NewEmail(to, server string) (*Email, error) {
	if !emailPattern.MatchString(to) {
		return nil, fmt.Errorf("email: %w: %q", ErrInvalidTarget, to)
	}
	if server == "" {
		server = defaultSMTPServer
	}
	return &Email{to: to, server: server}, nil
}

func (e *Email) Name() string { return "email:" + e.to }

// Send simulates delivery to the recipient via the configured relay.
func (e *Email) Send(a alert.Alert) alert.Delivery {
	slog.Info("email notification",
		"server", e.server,
		"to", e.to,
		"alert", a.ID,
		"message", a.Message,
	)
	return delivered(e.Name())
}
