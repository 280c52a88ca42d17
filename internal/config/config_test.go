package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
system:
  name: plant-a
  check_interval: 30s
  max_alerts_per_hour: 10
  http_port: 9090
  log_level: debug
sensors:
  - id: temp-1
    type: temperature
    location: server room
    min: 10
    max: 30
  - id: vib-1
    type: vibration
    rms_limit: 2.5
notifiers:
  - type: email
    target: ops@example.com
    server: smtp.acme.internal
  - type: webhook
    target: https://hooks.example.com/alerts
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.System.Name != "plant-a" {
		t.Errorf("Name: got %q", cfg.System.Name)
	}
	if cfg.System.CheckInterval != 30*time.Second {
		t.Errorf("CheckInterval: got %s", cfg.System.CheckInterval)
	}
	if cfg.System.MaxAlertsPerHour != 10 {
		t.Errorf("MaxAlertsPerHour: got %d", cfg.System.MaxAlertsPerHour)
	}
	if len(cfg.Sensors) != 2 {
		t.Fatalf("Sensors: got %d, want 2", len(cfg.Sensors))
	}
	if cfg.Sensors[0].Min == nil || *cfg.Sensors[0].Min != 10 {
		t.Errorf("sensor min: got %v", cfg.Sensors[0].Min)
	}
	if cfg.Sensors[1].RMSLimit == nil || *cfg.Sensors[1].RMSLimit != 2.5 {
		t.Errorf("sensor rms_limit: got %v", cfg.Sensors[1].RMSLimit)
	}
	if cfg.Sensors[1].Min != nil {
		t.Error("absent min should stay nil")
	}
	if len(cfg.Notifiers) != 2 {
		t.Errorf("Notifiers: got %d, want 2", len(cfg.Notifiers))
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "system:\n  name: minimal\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.System.CheckInterval != DefaultCheckInterval {
		t.Errorf("CheckInterval default: got %s", cfg.System.CheckInterval)
	}
	if cfg.System.MaxAlertsPerHour != DefaultMaxAlertsPerHour {
		t.Errorf("MaxAlertsPerHour default: got %d", cfg.System.MaxAlertsPerHour)
	}
	if cfg.System.HTTPPort != DefaultHTTPPort {
		t.Errorf("HTTPPort default: got %d", cfg.System.HTTPPort)
	}
	if cfg.System.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel default: got %q", cfg.System.LogLevel)
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"negative interval", "system:\n  check_interval: -5s\n"},
		{"negative cap", "system:\n  max_alerts_per_hour: -1\n"},
		{"port out of range", "system:\n  http_port: 70000\n"},
		{"unknown log level", "system:\n  log_level: chatty\n"},
		{"broken yaml", "system: [\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.content)); err == nil {
				t.Error("Load: expected error, got nil")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load: expected error for missing file")
	}
}

func TestWatch_ReloadsOnRewrite(t *testing.T) {
	path := writeConfig(t, "system:\n  name: before\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloads := make(chan *Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(cfg *Config) { reloads <- cfg })
	}()

	// Give the watcher time to register the path before rewriting.
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(path, []byte("system:\n  name: after\n"), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	select {
	case cfg := <-reloads:
		if cfg.System.Name != "after" {
			t.Errorf("reloaded Name: got %q, want %q", cfg.System.Name, "after")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload after rewrite")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_KeepsActiveConfigOnBadRewrite(t *testing.T) {
	path := writeConfig(t, "system:\n  name: stable\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloads := make(chan *Config, 4)
	go func() { _ = Watch(ctx, path, func(cfg *Config) { reloads <- cfg }) }()

	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(path, []byte("system: [\n"), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	select {
	case cfg := <-reloads:
		t.Fatalf("unexpected reload from broken yaml: %+v", cfg.System)
	case <-time.After(600 * time.Millisecond):
	}

	// A subsequent valid rewrite is picked up as usual.
	if err := os.WriteFile(path, []byte("system:\n  name: recovered\n"), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	select {
	case cfg := <-reloads:
		if cfg.System.Name != "recovered" {
			t.Errorf("reloaded Name: got %q, want %q", cfg.System.Name, "recovered")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload after valid rewrite")
	}
}

func TestWatch_MissingPath(t *testing.T) {
	err := Watch(context.Background(),
		filepath.Join(t.TempDir(), "nope.yaml"), func(*Config) {})
	if err == nil {
		t.Error("Watch: expected error for missing path")
	}
}

func TestSlogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := (SystemConfig{LogLevel: tc.in}).SlogLevel(); got != tc.want {
			t.Errorf("SlogLevel(%q): got %v, want %v", tc.in, got, tc.want)
		}
	}
}
