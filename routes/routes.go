package routes

import (
	"net/http"
	"time"

	"carelink/handlers"
	"carelink/middleware"
	"carelink/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers facility account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterFacilityHandler)
		api.POST("/login", hb.AuthenticateFacilityHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthFacilityMiddleware(hb.FacilityRepo))
		api.GET("/me", hb.GetFacilityHandler)
		api.PATCH("/me", hb.UpdateFacilityHandler)
		api.PUT("/me/fcm-token", hb.UpdateFCMTokenHandler)
		api.DELETE("/me", hb.DeleteFacilityHandler)
		api.DELETE("/revoke", hb.RevokeAuthTokenHandler)
		api.POST("/otp/send", hb.SendOTPHandler)
		api.POST("/otp/verify", hb.VerifyOTPHandler)
	}
}

// RegisterServiceProfileRoutes registers the facility service profile endpoints.
func RegisterServiceProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.Use(middleware.JWTAuthFacilityMiddleware(hb.FacilityRepo))
		api.GET("/:facilityId", hb.GetServiceProfileHandler)
		api.GET("/:facilityId/filtered", hb.GetFilteredServiceProfileHandler)
		api.PUT("/:facilityId", hb.CreateOrUpdateServiceProfileHandler)
	}
}

// RegisterDocumentRoutes registers the facility document endpoints.
func RegisterDocumentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/documents")
	{
		api.Use(middleware.JWTAuthFacilityMiddleware(hb.FacilityRepo))
		api.GET("/:facilityId", hb.GetDocumentsHandler)
		api.POST("/:facilityId", hb.SaveDocumentsHandler)
	}
}

// RegisterNotificationRoutes registers facility notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthFacilityMiddleware(hb.FacilityRepo))
		api.GET("", hb.ListNotificationsHandler)
		api.PUT("/read", hb.MarkNotificationsReadHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for back-office operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/facilities", hb.ListFacilitiesHandler)
		adminGroup.PUT("/facilities/:facilityId/verify", hb.VerifyFacilityHandler)
		adminGroup.PUT("/documents/:facilityId/review", hb.ReviewDocumentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterServiceProfileRoutes(r, hb)
	RegisterDocumentRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
