package service

// Overall health states.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusDegraded  = "degraded"
	HealthStatusUnhealthy = "unhealthy"
)

// Component states reported by the health check.
const (
	ComponentRunning      = "running"
	ComponentStopped      = "stopped"
	ComponentConnected    = "connected"
	ComponentDisconnected = "disconnected"
)

// Circuit breaker states as exposed over the health endpoint.
const (
	BreakerClosed   = "closed"
	BreakerHalfOpen = "half_open"
	BreakerOpen     = "open"
)

type HealthStatus struct {
	Status               string `json:"status"`
	SchedulerStatus      string `json:"scheduler_status"`
	ListenerStatus       string `json:"listener_status"`
	DatabaseStatus       string `json:"database_status"`
	RedisStatus          string `json:"redis_status"`
	CircuitBreakerStatus string `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  string `json:"circuit_breaker_state,omitempty"`
}
