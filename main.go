package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carelink/config"
	"carelink/cron"
	"carelink/database"
	documentsRepoPkg "carelink/database/repository/documents"
	facilityRepoPkg "carelink/database/repository/facility"
	notificationRepoPkg "carelink/database/repository/notification"
	serviceprofileRepoPkg "carelink/database/repository/serviceprofile"
	"carelink/handlers"
	"carelink/middleware"
	"carelink/routes"
	"carelink/services/admin"
	"carelink/services/documents"
	"carelink/services/facility"
	"carelink/services/notification"
	"carelink/services/serviceprofile"
	"carelink/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	defer asynqClient.Close()
	cron.InitOTPWorker()

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient(), utils.GetOTPCacheClient()},
		database.MongoClient,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	facRepo := facilityRepoPkg.NewMongoFacilityRepo()
	profileRepo := serviceprofileRepoPkg.NewMongoServiceProfileRepo()
	docRepo := documentsRepoPkg.NewMongoDocumentRepo()
	notifRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// services.
	facilityService, err := facility.NewDefaultFacilityService(facRepo, asynqClient)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	profileService, err := serviceprofile.NewDefaultServiceProfileService(profileRepo, utils.GetCacheClient())
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	documentService, err := documents.NewDefaultDocumentService(docRepo, cloudinaryStorageService)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	notificationService, err := notification.NewDefaultNotificationService(notifRepo, facRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	adminService, err := admin.NewDefaultAdminService(facRepo, documentService, notificationService)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	facilityHandler := handlers.NewFacilityHandler(facilityService)
	profileHandler := handlers.NewServiceProfileHandler(profileService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		FacilityRepo: facRepo,

		// Facility account endpoints.
		RegisterFacilityHandler:     facilityHandler.RegisterFacilityHandler,
		AuthenticateFacilityHandler: facilityHandler.AuthenticateFacilityHandler,
		GetFacilityHandler:          facilityHandler.GetFacilityHandler,
		UpdateFacilityHandler:       facilityHandler.UpdateFacilityHandler,
		UpdateFCMTokenHandler:       facilityHandler.UpdateFCMTokenHandler,
		RevokeAuthTokenHandler:      facilityHandler.RevokeAuthTokenHandler,
		DeleteFacilityHandler:       facilityHandler.DeleteFacilityHandler,

		// OTP endpoints.
		SendOTPHandler:   facilityHandler.SendOTPHandler,
		VerifyOTPHandler: facilityHandler.VerifyOTPHandler,

		// Service profile endpoints.
		GetServiceProfileHandler:            profileHandler.GetServiceProfileHandler,
		GetFilteredServiceProfileHandler:    profileHandler.GetFilteredServiceProfileHandler,
		CreateOrUpdateServiceProfileHandler: profileHandler.CreateOrUpdateServiceProfileHandler,

		// Document endpoints.
		GetDocumentsHandler:  documentHandler.GetDocumentsHandler,
		SaveDocumentsHandler: documentHandler.SaveDocumentsHandler,

		// Notification endpoints.
		ListNotificationsHandler:     notificationHandler.ListNotificationsHandler,
		MarkNotificationsReadHandler: notificationHandler.MarkNotificationsReadHandler,

		// Admin endpoints.
		ListFacilitiesHandler: adminHandler.ListFacilitiesHandler,
		VerifyFacilityHandler: adminHandler.VerifyFacilityHandler,
		ReviewDocumentHandler: adminHandler.ReviewDocumentHandler,
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
