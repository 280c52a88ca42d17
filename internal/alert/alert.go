package alert

import (
	"fmt"
	"time"

	"github.com/fleetsense/fleetsense/internal/sensor"
)

// Alert is a single alert event produced when a reading breaches a sensor's
// thresholds. Transient: created, dispatched, logged, then discarded.
type Alert struct {
	ID       string       `json:"id"`
	SensorID string       `json:"sensor_id"`
	Kind     string       `json:"kind"`
	Level    sensor.Level `json:"-"`
	Severity string       `json:"severity"`
	Value    float64      `json:"value"`
	Message  string       `json:"message"`
	FiredAt  time.Time    `json:"fired_at"`
}

// DeliveryStatus is the outcome of one notifier's send attempt.
type DeliveryStatus string

const (
	StatusDelivered DeliveryStatus = "delivered"
	StatusFailed    DeliveryStatus = "failed"
)

// Delivery reports one notifier's attempt to deliver one alert.
type Delivery struct {
	AlertID  string         `json:"alert_id"`
	Notifier string         `json:"notifier"`
	Status   DeliveryStatus `json:"status"`
	Reason   string         `json:"reason,omitempty"`
}

// Notifier is a delivery channel for alerts. Implementations are stateless
// beyond their target configuration; Send reports the outcome rather than
// returning an error so a failing channel never aborts the cycle.
type Notifier interface {
	// Name labels the channel in summaries and metrics, e.g. "email:ops@acme.io".
	Name() string

	// Send attempts delivery of a. The returned Delivery's AlertID may be
	// left empty; the manager fills it in.
	Send(a Alert) Delivery
}

// message renders the human-readable alert text.
func message(s sensor.Sensor, level sensor.Level, value float64) string {
	loc := s.Location()
	if loc == "" {
		loc = "unspecified"
	}
	return fmt.Sprintf("[%s] %s sensor %s at %s: reading %.2f breached threshold",
		level, s.Kind(), s.ID(), loc, value)
}
