package sensor

import (
	"fmt"

	"github.com/fleetsense/fleetsense/internal/config"
)

// New constructs the Sensor described by cfg, dispatching on cfg.Type.
// It validates required parameters before returning an instance; an entry
// with a missing or out-of-domain threshold fails with ErrInvalidConfig,
// an unrecognized type tag with ErrUnknownKind. Keys a variant does not use
// are ignored.
func New(cfg config.SensorConfig) (Sensor, error) {
	if cfg.ID == "" {
		return nil, fmt.Errorf("%w: sensor id is required", ErrInvalidConfig)
	}

	switch cfg.Type {
	case KindTemperature:
		min, max, err := band(cfg)
		if err != nil {
			return nil, err
		}
		return &Temperature{base: newBase(cfg.ID, cfg.Location, cfg.Calibration), min: min, max: max}, nil

	case KindVibration:
		if cfg.RMSLimit == nil {
			return nil, fmt.Errorf("sensor %q: %w: rms_limit is required", cfg.ID, ErrInvalidConfig)
		}
		if *cfg.RMSLimit <= 0 {
			return nil, fmt.Errorf("sensor %q: %w: rms_limit must be positive, got %v",
				cfg.ID, ErrInvalidConfig, *cfg.RMSLimit)
		}
		return &Vibration{base: newBase(cfg.ID, cfg.Location, cfg.Calibration), limit: *cfg.RMSLimit}, nil

	case KindHumidity:
		min, max, err := band(cfg)
		if err != nil {
			return nil, err
		}
		if min < 0 || max > 100 {
			return nil, fmt.Errorf("sensor %q: %w: humidity band [%v, %v] outside [0, 100]",
				cfg.ID, ErrInvalidConfig, min, max)
		}
		return &Humidity{base: newBase(cfg.ID, cfg.Location, cfg.Calibration), min: min, max: max}, nil

	default:
		return nil, fmt.Errorf("sensor %q: %w: %q", cfg.ID, ErrUnknownKind, cfg.Type)
	}
}

// band extracts and validates the min/max threshold pair.
func band(cfg config.SensorConfig) (min, max float64, err error) {
	if cfg.Min == nil || cfg.Max == nil {
		return 0, 0, fmt.Errorf("sensor %q: %w: min and max are required", cfg.ID, ErrInvalidConfig)
	}
	if *cfg.Min >= *cfg.Max {
		return 0, 0, fmt.Errorf("sensor %q: %w: min %v must be below max %v",
			cfg.ID, ErrInvalidConfig, *cfg.Min, *cfg.Max)
	}
	return *cfg.Min, *cfg.Max, nil
}
