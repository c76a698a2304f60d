package model

const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
)

// DependencyHealth is the outcome of a single bounded probe against one
// remote dependency.
type DependencyHealth struct {
	Status         string  `json:"status"`
	ResponseTimeMS float64 `json:"response_time_ms"`
}

// HealthReport aggregates this service's status with its dependencies'.
type HealthReport struct {
	Service      string                      `json:"service"`
	Status       string                      `json:"status"`
	Dependencies map[string]DependencyHealth `json:"dependencies,omitempty"`
}
