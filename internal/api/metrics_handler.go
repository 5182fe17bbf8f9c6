package api

import (
	"alcyxob/workout-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MetricsHandler holds the metrics service dependency.
type MetricsHandler struct {
	metricsService service.MetricsService
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(metricsService service.MetricsService) *MetricsHandler {
	return &MetricsHandler{metricsService: metricsService}
}

// GetMetrics calculates the caller's metabolic metrics from their
// saved profile. An incomplete profile yields the zero result, not an
// error.
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	metrics, err := h.metricsService.GetMetricsForUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to calculate metrics")
		return
	}
	c.JSON(http.StatusOK, metrics)
}
