package handlers

import (
	"net/http"
	"strconv"
	"time"

	"porter/models"
	"porter/services/dates"
	"porter/services/notification"
	"porter/services/tasks"
	"porter/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// arrivalReminderHour is the property-local clock hour at which the front
// desk gets its arrival reminder.
const arrivalReminderHour = 7

// WebhookHandler ingests change notifications pushed by the upstream
// provider and relays them to dashboards.
type WebhookHandler struct {
	Publisher  notification.EventPublisher
	TaskClient *asynq.Client
	Loc        *time.Location
	Logger     *zap.Logger
}

func NewWebhookHandler(publisher notification.EventPublisher, taskClient *asynq.Client, loc *time.Location, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{Publisher: publisher, TaskClient: taskClient, Loc: loc, Logger: logger}
}

// HandleBookingEvent handles POST /api/webhooks/bookings. The response is
// sent before fan-out completes; delivery to individual dashboards is never
// awaited.
func (h *WebhookHandler) HandleBookingEvent(c *gin.Context) {
	var event models.BookingEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "invalid webhook payload: "+err.Error())
		return
	}
	if event.Action == "" {
		utils.JSONFail(c, http.StatusBadRequest, "action is required")
		return
	}

	h.Publisher.Publish("booking."+event.Action, map[string]string{
		"bookingId": strconv.FormatInt(event.Booking.ID, 10),
		"status":    event.Booking.Status,
		"arrival":   event.Booking.Arrival,
		"departure": event.Booking.Departure,
		"guestName": event.Booking.GuestName,
	})

	if event.Action == "created" {
		h.scheduleArrivalReminder(event.Booking)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// scheduleArrivalReminder queues a morning-of-arrival reminder for new
// reservations. Scheduling failures are logged, never surfaced to the
// provider — a webhook retry storm helps nobody.
func (h *WebhookHandler) scheduleArrivalReminder(b models.Booking) {
	if h.TaskClient == nil || b.Arrival == "" {
		return
	}

	fireAt, err := dates.At(h.Loc, b.Arrival, arrivalReminderHour, 0)
	if err != nil {
		h.Logger.Warn("Skipping arrival reminder, bad arrival date",
			zap.Int64("bookingId", b.ID), zap.Error(err))
		return
	}
	if fireAt.Before(time.Now()) {
		return
	}

	task, opts, err := tasks.NewArrivalReminderTask(models.ReminderPayload{
		BookingID: b.ID,
		GuestName: b.GuestName,
		Arrival:   b.Arrival,
		RoomID:    b.RoomID,
	}, fireAt)
	if err != nil {
		h.Logger.Error("Failed to build arrival reminder task", zap.Error(err))
		return
	}
	if _, err := h.TaskClient.Enqueue(task, opts...); err != nil {
		h.Logger.Error("Failed to enqueue arrival reminder",
			zap.Int64("bookingId", b.ID), zap.Error(err))
	}
}
