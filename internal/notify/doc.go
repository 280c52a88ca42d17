// Package notify implements the email, webhook, and sms delivery channels
// behind the alert.Notifier contract.
//
// Channels validate their target at construction (email address pattern,
// http(s) URL scheme, 10-digit phone number) and fail with ErrInvalidTarget.
// Delivery itself is simulated — no SMTP, HTTP, or carrier traffic leaves the
// process. Send logs the alert against the channel target and reports a
// deterministic Delivery result, which is what the cycle summary records.
//
// New(cfg) is the factory dispatching on the configured channel type.
package notify
