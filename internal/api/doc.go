// Package api exposes the read-only control-panel HTTP surface.
//
// Endpoints:
//   - GET /api/v1/health  — liveness and system identity
//   - GET /api/v1/status  — panel status including the last cycle summary
//   - GET /api/v1/sensors — registered sensors with their last readings
//   - GET /api/v1/alerts  — recent alert log entries (?limit=N, default 50)
//   - GET /metrics        — Prometheus exposition
//
// The handler only reads from the monitor.Panel; nothing here mutates
// system state.
package api
