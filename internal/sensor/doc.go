// Package sensor defines the sensor contract and its three variants:
// temperature, vibration, and humidity.
//
// Read produces a simulated reading — uniform over the configured threshold
// band widened by 25% on each side (vibration: uniform over [0, 2*limit)) —
// and retains it as the sensor's last reading. Evaluate maps a reading to a
// Level: None inside the thresholds, Warning for an overshoot up to a quarter
// of the band span (or RMS limit), Critical beyond. Threshold comparisons are
// strict: a value exactly on a boundary is not a breach.
//
// Vibration evaluates the root-mean-square over a window of the 5 most
// recent readings rather than the instantaneous value.
//
// New(cfg) is the factory: it dispatches on the type tag and validates all
// required parameters (min < max, positive limits) before constructing,
// failing with ErrInvalidConfig or ErrUnknownKind.
package sensor
