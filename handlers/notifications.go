package handlers

import (
	"net/http"
	"strconv"

	"porter/services/notification"
	"porter/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the notification audit log.
type NotificationHandler struct {
	Svc notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Svc: svc}
}

// Recent handles GET /api/notifications?limit=N.
func (h *NotificationHandler) Recent(c *gin.Context) {
	limit := int64(50)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			utils.JSONFail(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	rows, err := h.Svc.Recent(c.Request.Context(), limit)
	if err != nil {
		utils.JSONFail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(rows), "data": rows})
}
