package api

// HealthResponse is the payload for GET /api/v1/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// SensorResponse is one sensor entry in GET /api/v1/sensors.
// LastValue is absent until the sensor has produced a reading.
type SensorResponse struct {
	ID        string   `json:"id"`
	Kind      string   `json:"kind"`
	Location  string   `json:"location,omitempty"`
	LastValue *float64 `json:"last_value,omitempty"`
	LastAt    string   `json:"last_at,omitempty"` // RFC3339
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
}
