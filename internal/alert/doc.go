// Package alert implements the evaluation-and-dispatch core of fleetsense.
//
// Manager owns the ordered sensor and notifier collections. RunCycle polls
// every sensor in insertion order, evaluates each reading, and fans breaches
// out to every registered notifier in insertion order. Failures — a sensor
// that cannot read, a notifier that cannot deliver — are folded into the
// returned CycleSummary and never abort the cycle: a fleet-monitoring pass
// must survive a single faulty channel or sensor.
//
// Construction and registration errors (ErrDuplicateSensor) are returned to
// the caller immediately. Dispatched alerts are retained in a capped Log
// with JSON and CSV export.
//
// Notifier is declared here, on the consumer side; package notify provides
// the email, webhook, and sms implementations.
package alert
