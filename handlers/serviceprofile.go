package handlers

import (
	"errors"
	"net/http"
	"strings"

	"carelink/models"
	"carelink/services/serviceprofile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceProfileHandler exposes the facility service profile endpoints.
type ServiceProfileHandler struct {
	Svc serviceprofile.ServiceProfileService
}

func NewServiceProfileHandler(svc serviceprofile.ServiceProfileService) *ServiceProfileHandler {
	return &ServiceProfileHandler{Svc: svc}
}

// GetServiceProfileHandler handles GET /api/services/:facilityId. A facility
// without a profile yet gets an empty object, not an error.
func (h *ServiceProfileHandler) GetServiceProfileHandler(c *gin.Context) {
	logger := getLogger(c)
	facilityID := c.Param("facilityId")

	profile, err := h.Svc.Get(c.Request.Context(), facilityID)
	if err != nil {
		logger.Error("Failed to fetch service profile", zap.String("facilityId", facilityID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch service profile"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": profile})
}

// GetFilteredServiceProfileHandler handles GET /api/services/:facilityId/filtered.
// The fields query parameter lists the top-level keys to keep, comma separated.
func (h *ServiceProfileHandler) GetFilteredServiceProfileHandler(c *gin.Context) {
	logger := getLogger(c)
	facilityID := c.Param("facilityId")

	var fields []string
	if raw := c.Query("fields"); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			if f = strings.TrimSpace(f); f != "" {
				fields = append(fields, f)
			}
		}
	}

	filtered, err := h.Svc.GetFiltered(c.Request.Context(), facilityID, fields)
	if err != nil {
		logger.Error("Failed to fetch filtered service profile", zap.String("facilityId", facilityID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch service profile"})
		return
	}
	if filtered == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, filtered)
}

// CreateOrUpdateServiceProfileHandler handles PUT /api/services/:facilityId.
func (h *ServiceProfileHandler) CreateOrUpdateServiceProfileHandler(c *gin.Context) {
	logger := getLogger(c)
	facilityID := c.Param("facilityId")

	var req models.ServiceProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid service profile request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.FacilityID = facilityID

	saved, err := h.Svc.CreateOrUpdate(c.Request.Context(), req)
	if err != nil {
		var validationErr serviceprofile.ValidationError
		var unknownType serviceprofile.ErrUnknownFacilityType
		var badRange serviceprofile.ErrInvalidTimeRange
		switch {
		case errors.As(err, &validationErr), errors.As(err, &unknownType), errors.As(err, &badRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to save service profile", zap.String("facilityId", facilityID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save service profile"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": saved})
}
