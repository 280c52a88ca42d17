package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fleetsense"

var (
	// CyclesTotal counts completed monitoring cycles.
	CyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cycles_total",
		Help:      "Monitoring cycles completed.",
	})

	// ReadingsTotal counts sensor readings taken, by sensor kind.
	ReadingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "readings_total",
		Help:      "Sensor readings produced.",
	}, []string{"kind"})

	// ReadFailuresTotal counts sensors that failed to produce a reading.
	ReadFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "read_failures_total",
		Help:      "Sensor reads that failed.",
	})

	// AlertsTotal counts alerts fired, by severity level.
	AlertsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_total",
		Help:      "Alerts fired.",
	}, []string{"level"})

	// AlertsSuppressedTotal counts breaches suppressed by the hourly cap.
	AlertsSuppressedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_suppressed_total",
		Help:      "Breaches suppressed by the hourly alert cap.",
	})

	// DeliveriesTotal counts notification deliveries, by notifier and outcome.
	DeliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deliveries_total",
		Help:      "Notification delivery attempts.",
	}, []string{"notifier", "status"})
)
