package monitor

import (
	"log/slog"
	"sync"

	"github.com/fleetsense/fleetsense/internal/alert"
)

// System is the top-level monitoring aggregate. It owns exactly one alert
// manager and retains the most recent cycle summary for the control panel
// and the HTTP surfaces to query.
//
// RunCycle is meant to be called from a single loop; the retained summary is
// guarded so read-only surfaces can query it concurrently.
type System struct {
	name    string
	version string
	manager *alert.Manager

	mu   sync.RWMutex
	last *alert.CycleSummary
}

// New creates a System around the given manager.
func New(name, version string, m *alert.Manager) *System {
	return &System{name: name, version: version, manager: m}
}

func (s *System) Name() string    { return s.name }
func (s *System) Version() string { return s.version }

// Manager returns the alert manager the system owns.
func (s *System) Manager() *alert.Manager { return s.manager }

// RunCycle delegates to the manager and retains the summary.
func (s *System) RunCycle() alert.CycleSummary {
	sum := s.manager.RunCycle()

	s.mu.Lock()
	s.last = &sum
	s.mu.Unlock()

	slog.Info("cycle complete",
		"cycle", sum.Cycle,
		"sensors", len(sum.Outcomes),
		"alerts", sum.Raised,
		"suppressed", sum.Suppressed,
		"deliveries", len(sum.Deliveries),
	)
	return sum
}

// LastSummary returns the most recent cycle summary, if a cycle has run.
func (s *System) LastSummary() (alert.CycleSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return alert.CycleSummary{}, false
	}
	return *s.last, true
}
