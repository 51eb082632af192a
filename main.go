// File: porter/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"porter/config"
	"porter/cron"
	"porter/database"
	deviceRepo "porter/database/repository/device"
	notificationRepo "porter/database/repository/notification"
	operatorRepoPkg "porter/database/repository/operator"
	stateRepo "porter/database/repository/state"
	"porter/handlers"
	"porter/middleware"
	"porter/routes"
	"porter/services/mailer"
	"porter/services/notification"
	"porter/services/operator"
	"porter/services/upstream"
	"porter/services/views"
	"porter/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	propertyLoc := config.PropertyLocation()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	operatorRepo := operatorRepoPkg.NewMongoOperatorRepo()
	devRepo := deviceRepo.NewMongoDeviceRepo()
	notifRepo := notificationRepo.NewMongoNotificationRepo()
	dashStateRepo := stateRepo.NewMongoStateRepo()

	// upstream client (one per process, carries its own rate telemetry).
	upstreamClient := upstream.NewClient()

	// services.
	viewService := &views.DefaultViewService{
		Source: upstreamClient,
		Loc:    propertyLoc,
		Logger: logger,
	}

	notificationService := &notification.DefaultNotificationService{
		Devices: devRepo,
		Audit:   notifRepo,
		FCM:     utils.FCMClient,
		Logger:  logger,
	}

	operatorService := &operator.DefaultOperatorService{
		Repo:   operatorRepo,
		Mailer: mailer.NewSMTPMailer(),
		Logger: logger,
	}

	// scheduled arrival reminders.
	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	cron.InitReminderWorker(notificationService)

	// handlers.
	viewHandler := handlers.NewViewHandler(viewService, logger)
	webhookHandler := handlers.NewWebhookHandler(notificationService, taskClient, propertyLoc, logger)
	operatorHandler := handlers.NewOperatorHandler(operatorService)
	deviceHandler := handlers.NewDeviceHandler(devRepo)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	stateHandler := handlers.NewStateHandler(dashStateRepo)
	systemHandler := handlers.NewSystemHandler(upstreamClient.Rate)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		OperatorRepo: operatorRepo,

		// Dashboard views.
		Overview:          viewHandler.Overview,
		Calendar:          viewHandler.Calendar,
		Movements:         viewHandler.Movements,
		Housekeeping:      viewHandler.Housekeeping,
		Revenue:           viewHandler.Revenue,
		Search:            viewHandler.Search,
		GetBooking:        viewHandler.GetBooking,
		ListBookings:      viewHandler.ListBookings,
		ListBookingsRange: viewHandler.ListBookingsRange,

		// Webhook ingest.
		BookingWebhook: webhookHandler.HandleBookingEvent,

		// Operator accounts and sessions.
		RegisterOperator: operatorHandler.Register,
		LoginOperator:    operatorHandler.Login,
		VerifyOTP:        operatorHandler.VerifyOTP,
		RevokeSession:    operatorHandler.Revoke,
		CurrentOperator:  operatorHandler.Me,

		// Devices, notifications, dashboard state, telemetry.
		RegisterDevice:      deviceHandler.Register,
		RecentNotifications: notificationHandler.Recent,
		GetDashboardState:   stateHandler.Get,
		SetDashboardState:   stateHandler.Set,
		UpstreamRate:        systemHandler.UpstreamRate,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
