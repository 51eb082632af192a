package routes

import (
	"net/http"
	"time"

	"porter/handlers"
	"porter/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterViewRoutes registers the dashboard aggregation views.
func RegisterViewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/views")
	{
		api.Use(middleware.JWTAuthOperatorMiddleware(hb.OperatorRepo))
		api.GET("/overview", hb.Overview)
		api.GET("/calendar", hb.Calendar)
		api.GET("/movements", hb.Movements)
		api.GET("/housekeeping", hb.Housekeeping)
		api.GET("/revenue", hb.Revenue)
		api.GET("/search", hb.Search)
	}
}

// RegisterBookingRoutes registers the raw booking listing endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthOperatorMiddleware(hb.OperatorRepo))
		api.GET("", hb.ListBookings)
		api.GET("/range", hb.ListBookingsRange)
		api.GET("/:id", hb.GetBooking)
	}
}

// RegisterOperatorRoutes registers operator account and session endpoints.
func RegisterOperatorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/operators")
	{
		api.POST("/register", hb.RegisterOperator)
		api.POST("/login", hb.LoginOperator)
		api.POST("/verify-otp", hb.VerifyOTP)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthOperatorMiddleware(hb.OperatorRepo))
		api.GET("/me", hb.CurrentOperator)
		api.DELETE("/session", hb.RevokeSession)
	}
}

// RegisterWebhookRoutes registers the upstream provider's push endpoint.
// Webhooks authenticate out-of-band (shared secret at the provider side),
// not with operator sessions.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/webhooks")
	{
		api.POST("/bookings", hb.BookingWebhook)
	}
}

// RegisterDashboardRoutes registers devices, notifications and state.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.JWTAuthOperatorMiddleware(hb.OperatorRepo))
		api.POST("/devices", hb.RegisterDevice)
		api.GET("/notifications", hb.RecentNotifications)
		api.GET("/state/:key", hb.GetDashboardState)
		api.PUT("/state/:key", hb.SetDashboardState)
	}
}

// RegisterAdminRoutes registers admin-only telemetry endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/system")
	{
		api.Use(middleware.JWTAuthOperatorMiddleware(hb.OperatorRepo))
		api.Use(middleware.RequireAdmin())
		api.GET("/upstream-rate", hb.UpstreamRate)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Porter"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterViewRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterOperatorRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
