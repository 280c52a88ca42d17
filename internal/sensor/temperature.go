package sensor

// Temperature watches a [min, max] band in degrees Celsius.
type Temperature struct {
	base
	min, max float64
}

func (t *Temperature) Kind() string { return KindTemperature }

// Read produces a simulated temperature, uniform over the configured band
// widened by simMargin on each side.
func (t *Temperature) Read() (Reading, error) {
	span := t.max - t.min
	v := t.min - span*simMargin + t.rnd()*span*(1+2*simMargin)
	return t.record(v), nil
}

// Evaluate reports a breach when the reading leaves the (min, max) band.
func (t *Temperature) Evaluate(r Reading) Level {
	return bandLevel(r.Value, t.min, t.max)
}

// Fahrenheit converts the last reading to degrees Fahrenheit.
// Returns false if no reading has been produced yet.
func (t *Temperature) Fahrenheit() (float64, bool) {
	r, ok := t.LastReading()
	if !ok {
		return 0, false
	}
	return r.Value*9/5 + 32, true
}
