package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values for the system configuration.
const (
	DefaultCheckInterval    = 10 * time.Second
	DefaultMaxAlertsPerHour = 50
	DefaultHTTPPort         = 8080
	DefaultLogLevel         = "info"
)

// Config is the full configuration parsed from config.yaml.
type Config struct {
	System    SystemConfig     `yaml:"system"`
	Sensors   []SensorConfig   `yaml:"sensors"`
	Notifiers []NotifierConfig `yaml:"notifiers"`
}

// SystemConfig holds system-wide settings.
type SystemConfig struct {
	// Name identifies this monitoring deployment in logs and status output.
	Name string `yaml:"name"`

	// CheckInterval is how often a full monitoring cycle runs (default 10s).
	CheckInterval time.Duration `yaml:"check_interval"`

	// MaxAlertsPerHour caps dispatched alerts inside a sliding hour.
	// Breaches beyond the cap are recorded as suppressed. 0 disables the cap.
	MaxAlertsPerHour int `yaml:"max_alerts_per_hour"`

	// HTTPPort is the port the status API and WebSocket hub listen on
	// (default 8080).
	HTTPPort int `yaml:"http_port"`

	// LogLevel is one of: debug | info | warn | error (default info).
	LogLevel string `yaml:"log_level"`
}

// SensorConfig describes one sensor to register.
//
// Min, Max and RMSLimit are pointers so a missing key can be distinguished
// from an explicit zero — which thresholds are required depends on the type.
type SensorConfig struct {
	// ID is the sensor identifier, unique within the system.
	ID string `yaml:"id"`

	// Type is one of: temperature | vibration | humidity.
	Type string `yaml:"type"`

	// Location is free-form placement metadata, e.g. "server room".
	Location string `yaml:"location"`

	// Calibration is an offset added to every raw reading.
	Calibration float64 `yaml:"calibration"`

	// Min and Max bound the acceptable band for temperature and humidity.
	Min *float64 `yaml:"min"`
	Max *float64 `yaml:"max"`

	// RMSLimit is the vibration RMS threshold.
	RMSLimit *float64 `yaml:"rms_limit"`
}

// NotifierConfig describes one notification channel.
type NotifierConfig struct {
	// Type is one of: email | webhook | sms.
	Type string `yaml:"type"`

	// Target is the channel address: email address, webhook URL, or phone number.
	Target string `yaml:"target"`

	// Server is the relay host label for email (default "smtp.example.com").
	Server string `yaml:"server"`

	// Provider is the carrier label for sms (default "Twilio").
	Provider string `yaml:"provider"`
}

// SlogLevel maps the configured log level to a slog.Level.
// Unknown values fall back to info.
func (s SystemConfig) SlogLevel() slog.Level {
	switch s.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads and parses the config file at path.
// Missing fields are filled with defaults before validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		System: SystemConfig{
			CheckInterval:    DefaultCheckInterval,
			MaxAlertsPerHour: DefaultMaxAlertsPerHour,
			HTTPPort:         DefaultHTTPPort,
			LogLevel:         DefaultLogLevel,
		},
	}
}

// validate checks structural constraints on the parsed configuration.
// Per-sensor and per-notifier parameters are validated by their factories,
// so a single bad entry can be skipped without rejecting the whole file.
func validate(cfg *Config) error {
	if cfg.System.CheckInterval <= 0 {
		return fmt.Errorf("system.check_interval must be positive, got %s", cfg.System.CheckInterval)
	}
	if cfg.System.MaxAlertsPerHour < 0 {
		return fmt.Errorf("system.max_alerts_per_hour must not be negative")
	}
	if cfg.System.HTTPPort <= 0 || cfg.System.HTTPPort > 65535 {
		return fmt.Errorf("system.http_port %d is out of range [1, 65535]", cfg.System.HTTPPort)
	}
	switch cfg.System.LogLevel {
	case "debug", "info", "warn", "error", "":
	default:
		return fmt.Errorf("system.log_level %q unknown: want debug|info|warn|error", cfg.System.LogLevel)
	}
	return nil
}
