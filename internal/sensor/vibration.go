package sensor

import "math"

// rmsWindow is the number of recent readings the RMS is computed over.
const rmsWindow = 5

// Vibration watches the root-mean-square magnitude of its recent readings
// against a configured limit.
type Vibration struct {
	base
	limit  float64
	window []float64
}

func (v *Vibration) Kind() string { return KindVibration }

// Read produces a simulated vibration magnitude, uniform over [0, 2*limit),
// and appends it to the RMS window.
func (v *Vibration) Read() (Reading, error) {
	r := v.record(v.rnd() * 2 * v.limit)
	v.window = append(v.window, r.Value)
	if len(v.window) > rmsWindow {
		v.window = v.window[len(v.window)-rmsWindow:]
	}
	return r, nil
}

// Evaluate reports a breach when the windowed RMS exceeds the limit.
// Before any reading has entered the window, the given reading stands alone.
func (v *Vibration) Evaluate(r Reading) Level {
	rms := v.RMS()
	if len(v.window) == 0 {
		rms = math.Abs(r.Value)
	}
	if rms <= v.limit {
		return LevelNone
	}
	if (rms-v.limit)/v.limit > criticalRatio {
		return LevelCritical
	}
	return LevelWarning
}

// RMS returns the root-mean-square over the current window,
// or 0 if the window is empty.
func (v *Vibration) RMS() float64 {
	if len(v.window) == 0 {
		return 0
	}
	var sum float64
	for _, x := range v.window {
		sum += x * x
	}
	return math.Sqrt(sum / float64(len(v.window)))
}
