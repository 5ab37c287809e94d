package handlers

import (
	facilityRepoPkg "carelink/database/repository/facility"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	FacilityRepo facilityRepoPkg.FacilityRepository

	// Facility account endpoints
	RegisterFacilityHandler     gin.HandlerFunc
	AuthenticateFacilityHandler gin.HandlerFunc
	GetFacilityHandler          gin.HandlerFunc
	UpdateFacilityHandler       gin.HandlerFunc
	UpdateFCMTokenHandler       gin.HandlerFunc
	RevokeAuthTokenHandler      gin.HandlerFunc
	DeleteFacilityHandler       gin.HandlerFunc

	// OTP endpoints
	SendOTPHandler   gin.HandlerFunc
	VerifyOTPHandler gin.HandlerFunc

	// Service profile endpoints
	GetServiceProfileHandler            gin.HandlerFunc
	GetFilteredServiceProfileHandler    gin.HandlerFunc
	CreateOrUpdateServiceProfileHandler gin.HandlerFunc

	// Document endpoints
	GetDocumentsHandler  gin.HandlerFunc
	SaveDocumentsHandler gin.HandlerFunc

	// Notification endpoints
	ListNotificationsHandler     gin.HandlerFunc
	MarkNotificationsReadHandler gin.HandlerFunc

	// Admin endpoints
	ListFacilitiesHandler gin.HandlerFunc
	VerifyFacilityHandler gin.HandlerFunc
	ReviewDocumentHandler gin.HandlerFunc
}
