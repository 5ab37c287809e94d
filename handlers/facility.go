package handlers

import (
	"net/http"

	"carelink/models"
	"carelink/services/facility"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FacilityHandler exposes facility account endpoints.
type FacilityHandler struct {
	Svc facility.FacilityService
}

func NewFacilityHandler(svc facility.FacilityService) *FacilityHandler {
	return &FacilityHandler{Svc: svc}
}

// RegisterFacilityHandler handles POST /api/auth/register.
func (h *FacilityHandler) RegisterFacilityHandler(c *gin.Context) {
	logger := getLogger(c)
	var data models.FacilityRegistrationData
	if err := c.ShouldBindJSON(&data); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Svc.RegisterFacility(data)
	if err != nil {
		logger.Error("Failed to register facility", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateFacilityHandler handles POST /api/auth/login.
func (h *FacilityHandler) AuthenticateFacilityHandler(c *gin.Context) {
	logger := getLogger(c)
	var body struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Svc.AuthenticateFacility(body.Email, body.Password)
	if err != nil {
		logger.Warn("Failed facility sign-in", zap.String("email", body.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetFacilityHandler handles GET /api/auth/me.
func (h *FacilityHandler) GetFacilityHandler(c *gin.Context) {
	logger := getLogger(c)
	facilityID := c.GetString("facilityID")

	fac, err := h.Svc.GetFacilityByID(c.Request.Context(), facilityID)
	if err != nil {
		logger.Error("Failed to fetch facility", zap.String("facilityId", facilityID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Facility not found"})
		return
	}
	fac.Security = models.FacilitySecurity{}
	c.JSON(http.StatusOK, fac)
}

// UpdateFacilityHandler handles PATCH /api/auth/me.
func (h *FacilityHandler) UpdateFacilityHandler(c *gin.Context) {
	logger := getLogger(c)
	facilityID := c.GetString("facilityID")

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	fac, err := h.Svc.UpdateFacility(c.Request.Context(), facilityID, updates)
	if err != nil {
		logger.Error("Failed to update facility", zap.String("facilityId", facilityID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update facility"})
		return
	}
	fac.Security = models.FacilitySecurity{}
	c.JSON(http.StatusOK, fac)
}

// UpdateFCMTokenHandler handles PUT /api/auth/me/fcm-token.
func (h *FacilityHandler) UpdateFCMTokenHandler(c *gin.Context) {
	facilityID := c.GetString("facilityID")
	var body struct {
		FCMToken string `json:"fcmToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.Svc.UpdateFCMToken(c.Request.Context(), facilityID, body.FCMToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update fcm token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "fcm token updated"})
}

// RevokeAuthTokenHandler handles DELETE /api/auth/revoke.
func (h *FacilityHandler) RevokeAuthTokenHandler(c *gin.Context) {
	logger := getLogger(c)
	facilityID := c.GetString("facilityID")

	if err := h.Svc.RevokeAuthToken(facilityID); err != nil {
		logger.Error("Failed to revoke auth token", zap.String("facilityId", facilityID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke auth token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// DeleteFacilityHandler handles DELETE /api/auth/me.
func (h *FacilityHandler) DeleteFacilityHandler(c *gin.Context) {
	logger := getLogger(c)
	facilityID := c.GetString("facilityID")

	if err := h.Svc.DeleteFacility(facilityID); err != nil {
		logger.Error("Failed to delete facility", zap.String("facilityId", facilityID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete facility"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "facility deleted"})
}
