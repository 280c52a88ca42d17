package notify

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fleetsense/fleetsense/internal/alert"
)

// Webhook is the HTTP callback delivery channel. Delivery is simulated: the
// alert is marshalled to the JSON payload a real POST would carry, then logged.
type Webhook struct {
	url string
}

// NewWebhook creates a Webhook channel for the given URL.
// Only http and https URLs are accepted.
func NewWebhook(url string) (*Webhook, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("webhook: %w: %q is not an http(s) url", ErrInvalidTarget, url)
	}
	return &Webhook{url: url}, nil
}

func (w *Webhook) Name() string { return "webhook:" + w.url }

// Send simulates a POST of the alert payload to the configured URL.
// A payload that cannot be marshalled is reported as a failed delivery.
func (w *Webhook) Send(a alert.Alert) alert.Delivery {
	body, err := json.Marshal(map[string]any{"alert": a})
	if err != nil {
		return alert.Delivery{
			Notifier: w.Name(),
			Status:   alert.StatusFailed,
			Reason:   fmt.Sprintf("marshal payload: %v", err),
		}
	}
	slog.Info("webhook notification",
		"url", w.url,
		"alert", a.ID,
		"payload_bytes", len(body),
	)
	return delivered(w.Name())
}
