package alert

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"sync"
	"time"
)

// defaultLogCap bounds the in-memory alert history.
const defaultLogCap = 200

// Log is a thread-safe, capped in-memory history of fired alerts, newest
// last. When the cap is exceeded the oldest entries are dropped.
type Log struct {
	mu      sync.RWMutex
	entries []Alert
	cap     int
}

// NewLog creates a Log holding at most capacity alerts.
// A capacity of 0 or less uses the default of 200.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = defaultLogCap
	}
	return &Log{cap: capacity}
}

// Append records a into the history, evicting the oldest entries past the cap.
func (l *Log) Append(a Alert) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, a)
	if len(l.entries) > l.cap {
		l.entries = l.entries[len(l.entries)-l.cap:]
	}
}

// Len returns the number of alerts currently held.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Recent returns copies of the n most recent alerts, newest first.
// n of 0 or less returns the whole history.
func (l *Log) Recent(n int) []Alert {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if n <= 0 || n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]Alert, 0, n)
	for i := len(l.entries) - 1; i >= len(l.entries)-n; i-- {
		out = append(out, l.entries[i])
	}
	return out
}

// Clear empties the history and returns the number of alerts removed.
func (l *Log) Clear() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	removed := len(l.entries)
	l.entries = nil
	return removed
}

// MarshalJSON renders the history as a JSON array, oldest first.
func (l *Log) MarshalJSON() ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.entries)
}

// WriteCSV writes the history to w as CSV rows with a header, oldest first.
func (l *Log) WriteCSV(w io.Writer) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"fired_at", "sensor_id", "severity", "value", "message"}); err != nil {
		return err
	}
	for _, a := range l.entries {
		row := []string{
			a.FiredAt.Format(time.RFC3339),
			a.SensorID,
			a.Severity,
			strconv.FormatFloat(a.Value, 'f', 2, 64),
			a.Message,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
