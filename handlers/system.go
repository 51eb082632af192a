package handlers

import (
	"net/http"

	"porter/services/upstream"

	"github.com/gin-gonic/gin"
)

// SystemHandler exposes operational telemetry for the admin dashboard.
type SystemHandler struct {
	Rate *upstream.RateLimitTracker
}

func NewSystemHandler(rate *upstream.RateLimitTracker) *SystemHandler {
	return &SystemHandler{Rate: rate}
}

// UpstreamRate handles GET /api/system/upstream-rate. The snapshot reflects
// the last upstream response that carried rate headers; it is telemetry
// only and never gates requests.
func (h *SystemHandler) UpstreamRate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "rateLimit": h.Rate.Snapshot()})
}
