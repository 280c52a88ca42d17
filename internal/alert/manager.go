package alert

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fleetsense/fleetsense/internal/metrics"
	"github.com/fleetsense/fleetsense/internal/sensor"
)

// ErrDuplicateSensor is returned when a sensor's ID is already registered.
var ErrDuplicateSensor = errors.New("duplicate sensor id")

// SensorOutcome is one sensor's result within a cycle. Err is non-empty when
// the read failed, so "no alert" and "evaluation failed" stay distinguishable.
type SensorOutcome struct {
	SensorID string       `json:"sensor_id"`
	Level    sensor.Level `json:"-"`
	Severity string       `json:"severity"`
	Value    float64      `json:"value"`
	Err      string       `json:"error,omitempty"`
}

// CycleSummary reports one full monitoring cycle: every sensor outcome and
// every notifier delivery result.
type CycleSummary struct {
	Cycle      uint64          `json:"cycle"`
	StartedAt  time.Time       `json:"started_at"`
	Outcomes   []SensorOutcome `json:"outcomes"`
	Raised     int             `json:"alerts_raised"`
	Suppressed int             `json:"alerts_suppressed"`
	Deliveries []Delivery      `json:"deliveries"`
}

// Manager owns the ordered sensor and notifier collections and drives one
// evaluation cycle at a time. Insertion order is polling order for sensors
// and dispatch order for notifiers; every notifier is invoked for every alert.
//
// Manager is not safe for concurrent mutation; RunCycle is meant to be called
// from a single loop.
type Manager struct {
	sensors   []sensor.Sensor
	ids       map[string]struct{}
	notifiers []Notifier
	log       *Log

	// maxPerHour caps dispatched alerts inside a sliding hour; 0 disables.
	maxPerHour int
	fired      []time.Time

	cycles uint64
	now    func() time.Time // injectable for deterministic tests
}

// NewManager creates a Manager with an empty sensor and notifier set.
// maxAlertsPerHour of 0 disables the hourly cap.
func NewManager(maxAlertsPerHour int) *Manager {
	return &Manager{
		ids:        make(map[string]struct{}),
		log:        NewLog(0),
		maxPerHour: maxAlertsPerHour,
		now:        time.Now,
	}
}

// AddSensor appends s to the polling order. A sensor whose ID is already
// registered is rejected with ErrDuplicateSensor; the collection is unchanged.
func (m *Manager) AddSensor(s sensor.Sensor) error {
	if _, ok := m.ids[s.ID()]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateSensor, s.ID())
	}
	m.ids[s.ID()] = struct{}{}
	m.sensors = append(m.sensors, s)
	slog.Info("sensor registered", "sensor", s.ID(), "kind", s.Kind(), "location", s.Location())
	return nil
}

// AddNotifier appends n to the dispatch order.
func (m *Manager) AddNotifier(n Notifier) {
	m.notifiers = append(m.notifiers, n)
	slog.Info("notifier registered", "notifier", n.Name())
}

// Sensors returns the registered sensors in polling order.
func (m *Manager) Sensors() []sensor.Sensor {
	out := make([]sensor.Sensor, len(m.sensors))
	copy(out, m.sensors)
	return out
}

// NotifierCount returns how many notifiers are registered.
func (m *Manager) NotifierCount() int { return len(m.notifiers) }

// Log returns the alert history log.
func (m *Manager) Log() *Log { return m.log }

// RunCycle polls every sensor in insertion order, evaluates each reading,
// and fans breaches out to every registered notifier. A sensor that fails to
// read or a notifier that fails to deliver never aborts the cycle — failures
// are folded into the returned summary.
func (m *Manager) RunCycle() CycleSummary {
	now := m.now()
	m.cycles++
	sum := CycleSummary{Cycle: m.cycles, StartedAt: now}

	for _, s := range m.sensors {
		r, err := s.Read()
		if err != nil {
			slog.Error("sensor read failed", "sensor", s.ID(), "err", err)
			metrics.ReadFailuresTotal.Inc()
			sum.Outcomes = append(sum.Outcomes, SensorOutcome{SensorID: s.ID(), Err: err.Error()})
			continue
		}
		metrics.ReadingsTotal.WithLabelValues(s.Kind()).Inc()

		level := s.Evaluate(r)
		sum.Outcomes = append(sum.Outcomes, SensorOutcome{
			SensorID: s.ID(),
			Level:    level,
			Severity: level.String(),
			Value:    r.Value,
		})
		if level == sensor.LevelNone {
			continue
		}

		if !m.admit(now) {
			sum.Suppressed++
			metrics.AlertsSuppressedTotal.Inc()
			slog.Warn("alert suppressed by hourly cap",
				"sensor", s.ID(), "level", level.String(), "cap", m.maxPerHour)
			continue
		}

		a := Alert{
			ID:       uuid.NewString(),
			SensorID: s.ID(),
			Kind:     s.Kind(),
			Level:    level,
			Severity: level.String(),
			Value:    r.Value,
			Message:  message(s, level, r.Value),
			FiredAt:  now,
		}
		sum.Raised++
		m.log.Append(a)
		metrics.AlertsTotal.WithLabelValues(a.Severity).Inc()
		slog.Warn("alert fired",
			"sensor", a.SensorID,
			"kind", a.Kind,
			"level", a.Severity,
			"value", a.Value,
		)

		for _, n := range m.notifiers {
			d := n.Send(a)
			d.AlertID = a.ID
			sum.Deliveries = append(sum.Deliveries, d)
			metrics.DeliveriesTotal.WithLabelValues(n.Name(), string(d.Status)).Inc()
			if d.Status == StatusFailed {
				slog.Error("notification delivery failed",
					"notifier", n.Name(), "alert", a.ID, "reason", d.Reason)
			}
		}
	}

	metrics.CyclesTotal.Inc()
	return sum
}

// admit applies the sliding-hour alert cap. It prunes fire timestamps older
// than an hour and records now when the alert is admitted.
func (m *Manager) admit(now time.Time) bool {
	cutoff := now.Add(-time.Hour)
	kept := m.fired[:0]
	for _, t := range m.fired {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	m.fired = kept

	if m.maxPerHour > 0 && len(m.fired) >= m.maxPerHour {
		return false
	}
	m.fired = append(m.fired, now)
	return true
}
