package handlers

import (
	operatorRepo "porter/database/repository/operator"

	"github.com/gin-gonic/gin"
)

// HandlerBundle collects every route handler plus the repositories the
// middleware needs, so route registration stays in one place.
type HandlerBundle struct {
	OperatorRepo operatorRepo.OperatorRepository

	// Dashboard views.
	Overview          gin.HandlerFunc
	Calendar          gin.HandlerFunc
	Movements         gin.HandlerFunc
	Housekeeping      gin.HandlerFunc
	Revenue           gin.HandlerFunc
	Search            gin.HandlerFunc
	GetBooking        gin.HandlerFunc
	ListBookings      gin.HandlerFunc
	ListBookingsRange gin.HandlerFunc

	// Webhook ingest.
	BookingWebhook gin.HandlerFunc

	// Operator accounts and sessions.
	RegisterOperator gin.HandlerFunc
	LoginOperator    gin.HandlerFunc
	VerifyOTP        gin.HandlerFunc
	RevokeSession    gin.HandlerFunc
	CurrentOperator  gin.HandlerFunc

	// Devices, notifications, dashboard state, telemetry.
	RegisterDevice      gin.HandlerFunc
	RecentNotifications gin.HandlerFunc
	GetDashboardState   gin.HandlerFunc
	SetDashboardState   gin.HandlerFunc
	UpstreamRate        gin.HandlerFunc
}
