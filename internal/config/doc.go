// Package config loads the fleetsense configuration from config.yaml.
//
// The file has three sections:
//   - system:    name, check_interval, max_alerts_per_hour, http_port, log_level
//   - sensors:   list of {id, type, location, calibration, min, max, rms_limit}
//   - notifiers: list of {type, target, server, provider}
//
// Load(path) applies defaults before unmarshalling, then validates the
// system section. Sensor and notifier entries are validated by their
// factories (sensor.New, notify.New) so one bad entry can be skipped without
// rejecting the whole file.
//
// Watch(ctx, path, onChange) reloads the file after each write using
// fsnotify, debouncing editor save bursts into a single reload; a file that
// fails to parse leaves the previous config active.
package config
