package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-suite/admin-dashboard/internal/portfolio/domain"
)

// UpstreamPinger is the slice of the backend client the health check needs.
type UpstreamPinger interface {
	Health(ctx context.Context) (domain.HealthStatus, error)
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Upstream  string    `json:"upstream,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	upstream    UpstreamPinger
}

func NewHealthHandler(serviceName, version string, upstream UpstreamPinger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		upstream:    upstream,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	upstreamStatus := "disabled"
	if h.upstream != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if _, err := h.upstream.Health(pingCtx); err != nil {
			upstreamStatus = "down"
		} else {
			upstreamStatus = "up"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Upstream:  upstreamStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
