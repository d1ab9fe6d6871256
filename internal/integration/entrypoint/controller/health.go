package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports whether one dependency is reachable.
type HealthCheck struct {
	Name  string
	Check func() bool
}

// HealthController handles health check endpoints.
type HealthController struct {
	checks []HealthCheck
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
	Timestamp    string            `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(checks ...HealthCheck) *HealthController {
	return &HealthController{
		checks: checks,
	}
}

// Check handles GET /health requests.
// The process is always reported up; a failing dependency marks it degraded.
func (h *HealthController) Check(c *gin.Context) {
	status := "ok"
	deps := make(map[string]string, len(h.checks))
	for _, check := range h.checks {
		if check.Check != nil && check.Check() {
			deps[check.Name] = "connected"
			continue
		}
		deps[check.Name] = "disconnected"
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:       status,
		Dependencies: deps,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})
}
