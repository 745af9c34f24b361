package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	storageHealthChecker func(ctx context.Context) bool
	backend              string
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Backend   string `json:"backend"`
	Storage   string `json:"storage"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(backend string, storageHealthChecker func(ctx context.Context) bool) *HealthController {
	return &HealthController{
		storageHealthChecker: storageHealthChecker,
		backend:              backend,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its storage backend.
// An unreachable backend turns the response into a 503.
func (h *HealthController) Check(c *gin.Context) {
	status, storage, code := "ok", "connected", http.StatusOK
	if h.storageHealthChecker == nil || !h.storageHealthChecker(c.Request.Context()) {
		status, storage, code = "degraded", "disconnected", http.StatusServiceUnavailable
	}

	c.JSON(code, HealthResponse{
		Status:    status,
		Backend:   h.backend,
		Storage:   storage,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
