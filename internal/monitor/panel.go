package monitor

import (
	"fmt"
	"strings"

	"github.com/fleetsense/fleetsense/internal/alert"
	"github.com/fleetsense/fleetsense/internal/sensor"
)

// Panel is the read-only operator view of a System. It holds a reference —
// not ownership — and never mutates what it observes.
type Panel struct {
	system *System
}

// NewPanel creates a Panel over sys.
func NewPanel(sys *System) *Panel {
	return &Panel{system: sys}
}

// Status is the queryable system snapshot the panel exposes.
type Status struct {
	Name         string              `json:"name"`
	Version      string              `json:"version"`
	Sensors      int                 `json:"sensors"`
	Notifiers    int                 `json:"notifiers"`
	AlertsLogged int                 `json:"alerts_logged"`
	LastCycle    *alert.CycleSummary `json:"last_cycle,omitempty"`
}

// Status returns the current system status, including the last cycle summary
// when one exists.
func (p *Panel) Status() Status {
	m := p.system.Manager()
	st := Status{
		Name:         p.system.Name(),
		Version:      p.system.Version(),
		Sensors:      len(m.Sensors()),
		Notifiers:    m.NotifierCount(),
		AlertsLogged: m.Log().Len(),
	}
	if sum, ok := p.system.LastSummary(); ok {
		st.LastCycle = &sum
	}
	return st
}

// Sensors returns the registered sensors in polling order.
func (p *Panel) Sensors() []sensor.Sensor {
	return p.system.Manager().Sensors()
}

// RecentAlerts returns the n most recent logged alerts, newest first.
func (p *Panel) RecentAlerts(n int) []alert.Alert {
	return p.system.Manager().Log().Recent(n)
}

// Report renders the operator dashboard as plain text.
func (p *Panel) Report() string {
	st := p.Status()

	var b strings.Builder
	fmt.Fprintf(&b, "=== %s v%s ===\n", st.Name, st.Version)
	fmt.Fprintf(&b, "sensors: %d  notifiers: %d  alerts logged: %d\n",
		st.Sensors, st.Notifiers, st.AlertsLogged)

	if st.LastCycle == nil {
		b.WriteString("no cycle has run yet\n")
		return b.String()
	}

	fmt.Fprintf(&b, "cycle %d at %s: %d alert(s), %d suppressed\n",
		st.LastCycle.Cycle,
		st.LastCycle.StartedAt.Format("15:04:05"),
		st.LastCycle.Raised,
		st.LastCycle.Suppressed,
	)
	for _, o := range st.LastCycle.Outcomes {
		if o.Err != "" {
			fmt.Fprintf(&b, "- %s: read failed: %s\n", o.SensorID, o.Err)
			continue
		}
		fmt.Fprintf(&b, "- %s: %s (%.2f)\n", o.SensorID, o.Severity, o.Value)
	}
	return b.String()
}
