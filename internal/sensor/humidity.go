package sensor

// Humidity watches a [min, max] band in percent relative humidity.
type Humidity struct {
	base
	min, max float64
}

func (h *Humidity) Kind() string { return KindHumidity }

// Read produces a simulated humidity, uniform over the configured band
// widened by simMargin on each side and clamped to the physical [0, 100] range.
func (h *Humidity) Read() (Reading, error) {
	span := h.max - h.min
	v := h.min - span*simMargin + h.rnd()*span*(1+2*simMargin)
	if v < 0 {
		v = 0
	} else if v > 100 {
		v = 100
	}
	return h.record(v), nil
}

// Evaluate reports a breach when the reading leaves the (min, max) band.
func (h *Humidity) Evaluate(r Reading) Level {
	return bandLevel(r.Value, h.min, h.max)
}

// DewPoint approximates the dew point from the last reading.
// Returns false if no reading has been produced yet.
func (h *Humidity) DewPoint() (float64, bool) {
	r, ok := h.LastReading()
	if !ok {
		return 0, false
	}
	if r.Value <= 0 {
		return 0, true
	}
	return r.Value - (100-r.Value)/5, true
}
