package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/fleetsense/fleetsense/internal/alert"
	"github.com/fleetsense/fleetsense/internal/config"
)

func testAlert() alert.Alert {
	return alert.Alert{
		ID:       "a-1",
		SensorID: "t1",
		Kind:     "temperature",
		Severity: "warning",
		Value:    85.2,
		Message:  "[warning] temperature sensor t1 at rack 4: reading 85.20 breached threshold",
		FiredAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewEmail_ValidatesAddress(t *testing.T) {
	cases := []struct {
		addr string
		ok   bool
	}{
		{"ops@example.com", true},
		{"first.last+tag@sub.example.io", true},
		{"not-an-address", false},
		{"missing@tld", false},
		{"@example.com", false},
		{"", false},
	}
	for _, tc := range cases {
		_, err := NewEmail(tc.addr, "")
		if tc.ok && err != nil {
			t.Errorf("NewEmail(%q): unexpected error %v", tc.addr, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidTarget) {
			t.Errorf("NewEmail(%q): got %v, want ErrInvalidTarget", tc.addr, err)
		}
	}
}

func TestEmail_Send_Delivers(t *testing.T) {
	e, err := NewEmail("ops@example.com", "smtp.acme.internal")
	if err != nil {
		t.Fatalf("NewEmail: %v", err)
	}
	d := e.Send(testAlert())
	if d.Status != alert.StatusDelivered {
		t.Errorf("Send: got %+v, want delivered", d)
	}
	if d.Notifier != "email:ops@example.com" {
		t.Errorf("Notifier label: got %q", d.Notifier)
	}
}

func TestNewWebhook_ValidatesScheme(t *testing.T) {
	if _, err := NewWebhook("https://hooks.example.com/alerts"); err != nil {
		t.Fatalf("NewWebhook https: %v", err)
	}
	if _, err := NewWebhook("http://hooks.example.com/alerts"); err != nil {
		t.Fatalf("NewWebhook http: %v", err)
	}
	for _, bad := range []string{"ftp://x", "hooks.example.com", ""} {
		if _, err := NewWebhook(bad); !errors.Is(err, ErrInvalidTarget) {
			t.Errorf("NewWebhook(%q): got %v, want ErrInvalidTarget", bad, err)
		}
	}
}

func TestWebhook_Send_Delivers(t *testing.T) {
	w, _ := NewWebhook("https://hooks.example.com/alerts")
	d := w.Send(testAlert())
	if d.Status != alert.StatusDelivered {
		t.Errorf("Send: got %+v, want delivered", d)
	}
}

func TestNewSMS_FormatsNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"5551234567", "+1-555-123-4567"},
		{"555-123-4567", "+1-555-123-4567"},
		{"(555) 123 4567", "+1-555-123-4567"},
		{"+1 415 555 0199", "+1-415-555-0199"}, // last 10 digits win
	}
	for _, tc := range cases {
		s, err := NewSMS(tc.in, "")
		if err != nil {
			t.Fatalf("NewSMS(%q): %v", tc.in, err)
		}
		if s.number != tc.want {
			t.Errorf("NewSMS(%q): got %q, want %q", tc.in, s.number, tc.want)
		}
	}
}

func TestNewSMS_RejectsShortNumbers(t *testing.T) {
	for _, bad := range []string{"123", "555-1234", ""} {
		if _, err := NewSMS(bad, ""); !errors.Is(err, ErrInvalidTarget) {
			t.Errorf("NewSMS(%q): got %v, want ErrInvalidTarget", bad, err)
		}
	}
}

func TestSMS_Send_Delivers(t *testing.T) {
	s, _ := NewSMS("555-123-4567", "Twilio")
	d := s.Send(testAlert())
	if d.Status != alert.StatusDelivered {
		t.Errorf("Send: got %+v, want delivered", d)
	}
	if d.Notifier != "sms:+1-555-123-4567" {
		t.Errorf("Notifier label: got %q", d.Notifier)
	}
}

func TestNew_DispatchesOnType(t *testing.T) {
	cases := []struct {
		cfg  config.NotifierConfig
		want string
	}{
		{config.NotifierConfig{Type: "email", Target: "ops@example.com"}, "email:ops@example.com"},
		{config.NotifierConfig{Type: "webhook", Target: "https://x.example.com/h"}, "webhook:https://x.example.com/h"},
		{config.NotifierConfig{Type: "sms", Target: "5551234567"}, "sms:+1-555-123-4567"},
	}
	for _, tc := range cases {
		n, err := New(tc.cfg)
		if err != nil {
			t.Fatalf("New(%q): %v", tc.cfg.Type, err)
		}
		if n.Name() != tc.want {
			t.Errorf("Name: got %q, want %q", n.Name(), tc.want)
		}
	}
}

func TestNew_UnknownType(t *testing.T) {
	_, err := New(config.NotifierConfig{Type: "pager", Target: "x"})
	if !errors.Is(err, ErrUnknownType) {
		t.Errorf("New: got %v, want ErrUnknownType", err)
	}
}
