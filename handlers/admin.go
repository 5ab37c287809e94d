package handlers

import (
	"net/http"

	"carelink/models"
	"carelink/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes back-office review endpoints.
type AdminHandler struct {
	Svc admin.AdminService
}

func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Svc: svc}
}

// ListFacilitiesHandler handles GET /api/admin/facilities. The type query
// parameter filters by facility type when present.
func (h *AdminHandler) ListFacilitiesHandler(c *gin.Context) {
	logger := getLogger(c)
	facilityType := models.FacilityType(c.Query("type"))

	list, err := h.Svc.ListFacilities(c.Request.Context(), facilityType)
	if err != nil {
		logger.Error("Failed to list facilities", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"facilities": list})
}

// VerifyFacilityHandler handles PUT /api/admin/facilities/:facilityId/verify.
func (h *AdminHandler) VerifyFacilityHandler(c *gin.Context) {
	logger := getLogger(c)
	facilityID := c.Param("facilityId")

	var body struct {
		Status string `json:"status" binding:"required"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	fac, err := h.Svc.VerifyFacility(c.Request.Context(), facilityID, body.Status, body.Notes)
	if err != nil {
		logger.Error("Failed to verify facility", zap.String("facilityId", facilityID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, fac)
}

// ReviewDocumentHandler handles PUT /api/admin/documents/:facilityId/review.
func (h *AdminHandler) ReviewDocumentHandler(c *gin.Context) {
	logger := getLogger(c)
	facilityID := c.Param("facilityId")

	var body struct {
		Slot     string `json:"slot" binding:"required"`
		FilePath string `json:"filePath" binding:"required"`
		Status   string `json:"status" binding:"required"`
		Notes    string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	status := models.VerificationStatus(body.Status)
	if status != models.VerificationPending && status != models.VerificationVerified && status != models.VerificationRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid verification status"})
		return
	}

	record, err := h.Svc.ReviewDocument(c.Request.Context(), facilityID, body.Slot, body.FilePath, status, body.Notes)
	if err != nil {
		logger.Error("Failed to review document", zap.String("facilityId", facilityID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}
