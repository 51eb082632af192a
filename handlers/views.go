package handlers

import (
	"net/http"
	"strconv"

	"porter/services/views"
	"porter/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ViewHandler exposes the dashboard aggregation views.
type ViewHandler struct {
	Views  views.DashboardViewService
	Logger *zap.Logger
}

func NewViewHandler(svc views.DashboardViewService, logger *zap.Logger) *ViewHandler {
	return &ViewHandler{Views: svc, Logger: logger}
}

// failView maps assembler failures onto the standard envelope: 400 for bad
// parameters, 500 for upstream or merge failures. No partial payload ever
// accompanies a failure.
func (h *ViewHandler) failView(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if views.IsValidation(err) {
		status = http.StatusBadRequest
	}
	utils.JSONFail(c, status, err.Error())
}

// Overview handles GET /api/views/overview?date=YYYY-MM-DD.
func (h *ViewHandler) Overview(c *gin.Context) {
	v, err := h.Views.Overview(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.failView(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"date":       v.Date,
		"stats":      v.Stats,
		"current":    v.Current,
		"arrivals":   v.Arrivals,
		"departures": v.Departures,
	})
}

// Calendar handles GET /api/views/calendar?start=YYYY-MM-DD&days=N.
func (h *ViewHandler) Calendar(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONFail(c, http.StatusBadRequest, "days must be an integer")
			return
		}
		days = parsed
	}

	v, err := h.Views.Calendar(c.Request.Context(), c.Query("start"), days)
	if err != nil {
		h.failView(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"dateRange": v.DateRange,
		"count":     v.Count,
		"data":      v.Data,
	})
}

// Movements handles GET /api/views/movements?date=YYYY-MM-DD.
func (h *ViewHandler) Movements(c *gin.Context) {
	v, err := h.Views.Movements(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.failView(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"date":      v.Date,
		"checkIns":  v.CheckIns,
		"checkOuts": v.CheckOuts,
	})
}

// Housekeeping handles GET /api/views/housekeeping?date=YYYY-MM-DD.
func (h *ViewHandler) Housekeeping(c *gin.Context) {
	v, err := h.Views.Housekeeping(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.failView(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"date":       v.Date,
		"summary":    v.Summary,
		"departures": v.Departures,
		"arrivals":   v.Arrivals,
		"stayovers":  v.Stayovers,
	})
}

// Revenue handles GET /api/views/revenue?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *ViewHandler) Revenue(c *gin.Context) {
	v, err := h.Views.Revenue(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		h.failView(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"dateRange": v.DateRange,
		"totals":    v.Totals,
		"bookings":  v.Bookings,
	})
}

// Search handles GET /api/views/search?q=&checkIn=&checkOut=.
func (h *ViewHandler) Search(c *gin.Context) {
	v, err := h.Views.Search(c.Request.Context(), c.Query("q"), c.Query("checkIn"), c.Query("checkOut"))
	if err != nil {
		h.failView(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   v.Count,
		"data":    v.Data,
	})
}

// GetBooking handles GET /api/bookings/:id. A missing booking is success with
// null data, not an error.
func (h *ViewHandler) GetBooking(c *gin.Context) {
	record, err := h.Views.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.failView(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    record,
	})
}

// ListBookings handles GET /api/bookings (no filters).
func (h *ViewHandler) ListBookings(c *gin.Context) {
	v, err := h.Views.ListBookings(c.Request.Context())
	if err != nil {
		h.failView(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"count":      v.Count,
		"totalPages": v.TotalPages,
		"data":       v.Data,
	})
}

// ListBookingsRange handles GET /api/bookings/range?from=&to=&type=.
func (h *ViewHandler) ListBookingsRange(c *gin.Context) {
	v, err := h.Views.ListBookingsRange(c.Request.Context(), c.Query("from"), c.Query("to"), c.Query("type"))
	if err != nil {
		h.failView(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"dateRange":  v.DateRange,
		"count":      v.Count,
		"totalPages": v.TotalPages,
		"data":       v.Data,
	})
}
