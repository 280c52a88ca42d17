package sensor

import (
	"errors"
	"math/rand"
	"sync"
	"time"
)

// Sensor kind tags, used by the factory and carried on alerts.
const (
	KindTemperature = "temperature"
	KindVibration   = "vibration"
	KindHumidity    = "humidity"
)

// simMargin widens the simulated reading range beyond the configured
// threshold band on each side, so a healthy fleet still produces the
// occasional breach.
const simMargin = 0.25

// criticalRatio is the normalized overshoot beyond which a breach escalates
// from Warning to Critical.
const criticalRatio = 0.25

var (
	// ErrInvalidConfig is returned when sensor parameters fail validation:
	// missing required thresholds, min >= max, or non-positive limits.
	ErrInvalidConfig = errors.New("invalid sensor configuration")

	// ErrUnknownKind is returned by the factory for an unrecognized type tag.
	ErrUnknownKind = errors.New("unknown sensor kind")
)

// Level is the outcome of evaluating a reading against a sensor's thresholds.
type Level int

const (
	LevelNone Level = iota
	LevelWarning
	LevelCritical
)

// String returns the level label used in alert messages and summaries.
func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelCritical:
		return "critical"
	default:
		return "none"
	}
}

// Reading is a single measurement produced by a sensor. Immutable once produced.
type Reading struct {
	SensorID string    `json:"sensor_id"`
	Value    float64   `json:"value"`
	TakenAt  time.Time `json:"taken_at"`
}

// Sensor is the contract shared by all sensor variants.
//
// Read produces a new simulated Reading and retains it as the last reading;
// it has no other side effects. Evaluate compares a reading against the
// sensor's thresholds. A value exactly on a threshold boundary is not a
// breach — all comparisons are strict.
type Sensor interface {
	ID() string
	Kind() string
	Location() string
	Read() (Reading, error)
	Evaluate(r Reading) Level
	LastReading() (Reading, bool)
}

// base carries the state and identity shared by all variants.
// The clock and RNG are injectable so tests are deterministic without sleeps.
//
// The last reading is guarded: the cycle loop writes it while the read-only
// HTTP surfaces query it from their own goroutines.
type base struct {
	id          string
	location    string
	calibration float64

	mu      sync.RWMutex
	last    Reading
	hasLast bool

	now func() time.Time
	rnd func() float64 // uniform in [0, 1)
}

func newBase(id, location string, calibration float64) base {
	return base{
		id:          id,
		location:    location,
		calibration: calibration,
		now:         time.Now,
		rnd:         rand.Float64,
	}
}

func (b *base) ID() string       { return b.id }
func (b *base) Location() string { return b.location }

// LastReading returns the most recent reading, if any has been produced.
func (b *base) LastReading() (Reading, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.last, b.hasLast
}

// record applies the calibration offset, stamps the reading, and retains it.
func (b *base) record(raw float64) Reading {
	r := Reading{
		SensorID: b.id,
		Value:    raw + b.calibration,
		TakenAt:  b.now(),
	}
	b.mu.Lock()
	b.last = r
	b.hasLast = true
	b.mu.Unlock()
	return r
}

// bandLevel evaluates v against a [min, max] band. The overshoot is
// normalized by the band span so severity is comparable across sensors:
// overshoot up to a quarter of the span is a Warning, beyond that Critical.
func bandLevel(v, min, max float64) Level {
	var over float64
	switch {
	case v < min:
		over = min - v
	case v > max:
		over = v - max
	default:
		return LevelNone
	}
	if over/(max-min) > criticalRatio {
		return LevelCritical
	}
	return LevelWarning
}
