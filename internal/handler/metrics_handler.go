package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/dive-course-api/internal/service"
	appErrors "github.com/noah-isme/dive-course-api/pkg/errors"
	"github.com/noah-isme/dive-course-api/pkg/response"
)

type catalogSizer interface {
	Len() int
}

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics *service.MetricsService
	catalog catalogSizer
}

// NewMetricsHandler constructs a metrics handler. catalog backs the readiness check.
func NewMetricsHandler(metrics *service.MetricsService, catalog catalogSizer) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, catalog: catalog}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrUnavailable, "metrics disabled"))
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Summary returns aggregated counters as JSON.
func (h *MetricsHandler) Summary(c *gin.Context) {
	response.OK(c, h.metrics.Snapshot())
}

// Health responds with a generic OK payload for liveness usage.
func (h *MetricsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports whether a non-empty catalog snapshot is being served.
func (h *MetricsHandler) Ready(c *gin.Context) {
	if h.catalog == nil || h.catalog.Len() == 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrUnavailable, "course catalog not loaded"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "courses": h.catalog.Len()})
}
