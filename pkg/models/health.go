package models

import "time"

// HealthResponse is the payload of GET /.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	// ConverterReady reports whether the shared conversion engine
	// initialized at startup. The field name is kept for compatibility
	// with existing API clients.
	ConverterReady bool `json:"docling_available"`
}

// HealthDetail is the extended payload of GET /health.
type HealthDetail struct {
	HealthResponse
	UptimeSeconds int64    `json:"uptime_seconds"`
	Version       string   `json:"version"`
	Formats       []string `json:"formats"`
}
