// Package monitor provides the top-level System aggregate and the read-only
// operator Panel.
//
// System owns one alert.Manager; RunCycle delegates to it and retains the
// latest CycleSummary. Panel associates with a System without owning it and
// exposes Status (structured) and Report (plain-text dashboard) queries.
package monitor
