package notify

import (
	"errors"
	"fmt"

	"github.com/fleetsense/fleetsense/internal/alert"
	"github.com/fleetsense/fleetsense/internal/config"
)

var (
	// ErrInvalidTarget is returned when a channel target fails validation
	// at construction: malformed address, URL, or phone number.
	ErrInvalidTarget = errors.New("invalid notifier target")

	// ErrUnknownType is returned by the factory for an unrecognized type tag.
	ErrUnknownType = errors.New("unknown notifier type")
)

// New constructs the Notifier described by cfg, dispatching on cfg.Type.
// Targets are validated here so a bad channel fails fast instead of failing
// every delivery.
func New(cfg config.NotifierConfig) (alert.Notifier, error) {
	switch cfg.Type {
	case "email":
		return NewEmail(cfg.Target, cfg.Server)
	case "webhook":
		return NewWebhook(cfg.Target)
	case "sms":
		return NewSMS(cfg.Target, cfg.Provider)
	default:
		return nil, fmt.Errorf("notifier: %w: %q", ErrUnknownType, cfg.Type)
	}
}

// delivered is the shared success result.
func delivered(name string) alert.Delivery {
	return alert.Delivery{Notifier: name, Status: alert.StatusDelivered}
}
