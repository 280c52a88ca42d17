// Package metrics registers the Prometheus instruments for the monitoring
// pipeline. All collectors live on the default registry and are exposed by
// the status API at /metrics.
package metrics
