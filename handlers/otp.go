package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SendOTPHandler handles POST /api/auth/otp/send.
func (h *FacilityHandler) SendOTPHandler(c *gin.Context) {
	logger := getLogger(c)
	facilityID := c.GetString("facilityID")

	var body struct {
		Channel string `json:"channel" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Svc.SendOTP(c.Request.Context(), facilityID, body.Channel); err != nil {
		logger.Error("Failed to send OTP", zap.String("facilityId", facilityID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "verification code sent"})
}

// VerifyOTPHandler handles POST /api/auth/otp/verify.
func (h *FacilityHandler) VerifyOTPHandler(c *gin.Context) {
	logger := getLogger(c)
	facilityID := c.GetString("facilityID")

	var body struct {
		Channel string `json:"channel" binding:"required"`
		OTP     string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Svc.VerifyOTP(c.Request.Context(), facilityID, body.Channel, body.OTP); err != nil {
		logger.Warn("OTP verification failed", zap.String("facilityId", facilityID), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "channel verified"})
}
