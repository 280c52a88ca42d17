package notify

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/fleetsense/fleetsense/internal/alert"
)

// defaultProvider is the carrier label used when none is configured.
const defaultProvider = "Twilio"

// SMS is the text-message delivery channel. Delivery is simulated: the alert
// is logged against the formatted number and provider.
type SMS struct {
	number   string // formatted at construction
	provider string
}

// NewSMS creates an SMS channel for the given phone number.
// The number must contain at least 10 digits; punctuation is ignored.
func NewSMS(number, provider string) (*SMS, error) {
	formatted, err := formatNumber(number)
	if err != nil {
		return nil, err
	}
	if provider == "" {
		provider = defaultProvider
	}
	return &SMS{number: formatted, provider: provider}, nil
}

func (s *SMS) Name() string { return "sms:" + s.number }

// Send simulates delivery through the configured provider.
func (s *SMS) Send(a alert.Alert) alert.Delivery {
	slog.Info("sms notification",
		"provider", s.provider,
		"to", s.number,
		"alert", a.ID,
		"message", a.Message,
	)
	return delivered(s.Name())
}

// formatNumber strips non-digits and renders the last 10 digits in
// +1-XXX-XXX-XXXX form.
func formatNumber(number string) (string, error) {
	var digits strings.Builder
	for _, r := range number {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) < 10 {
		return "", fmt.Errorf("sms: %w: %q has fewer than 10 digits", ErrInvalidTarget, number)
	}
	d = d[len(d)-10:]
	return fmt.Sprintf("+1-%s-%s-%s", d[:3], d[3:6], d[6:]), nil
}
