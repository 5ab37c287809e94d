package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"carelink/models"
	"carelink/services/documents"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DocumentHandler exposes the facility document endpoints.
type DocumentHandler struct {
	Svc documents.DocumentService
}

func NewDocumentHandler(svc documents.DocumentService) *DocumentHandler {
	return &DocumentHandler{Svc: svc}
}

// GetDocumentsHandler handles GET /api/documents/:facilityId.
func (h *DocumentHandler) GetDocumentsHandler(c *gin.Context) {
	logger := getLogger(c)
	facilityID := c.Param("facilityId")

	record, err := h.Svc.Get(c.Request.Context(), facilityID)
	if err != nil {
		logger.Error("Failed to fetch documents", zap.String("facilityId", facilityID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}
	if record == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, record)
}

// SaveDocumentsHandler handles POST /api/documents/:facilityId as multipart
// form data. For each slot, a form value named after the slot carries a JSON
// array of surviving stored paths and file parts under the same name carry new
// uploads. Slots absent from the form are left untouched.
func (h *DocumentHandler) SaveDocumentsHandler(c *gin.Context) {
	logger := getLogger(c)
	facilityID := c.Param("facilityId")

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form: " + err.Error()})
		return
	}

	surviving := make(map[string][]string)
	for _, slot := range models.DocumentSlots() {
		values, ok := form.Value[slot]
		if !ok || len(values) == 0 {
			continue
		}
		var paths []string
		if err := json.Unmarshal([]byte(values[0]), &paths); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid surviving list for slot %s", slot)})
			return
		}
		surviving[slot] = paths
	}

	tmpDir, err := os.MkdirTemp("", "carelink-upload-*")
	if err != nil {
		logger.Error("Failed to create upload buffer directory", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to buffer uploads"})
		return
	}
	defer os.RemoveAll(tmpDir)

	uploads := make(map[string][]documents.UploadedFile)
	for _, slot := range models.DocumentSlots() {
		for _, fh := range form.File[slot] {
			localPath := filepath.Join(tmpDir, uuid.New().String()+filepath.Ext(fh.Filename))
			if err := c.SaveUploadedFile(fh, localPath); err != nil {
				logger.Error("Failed to buffer uploaded file", zap.String("slot", slot), zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to buffer uploads"})
				return
			}
			uploads[slot] = append(uploads[slot], documents.UploadedFile{
				LocalPath: localPath,
				Name:      fh.Filename,
			})
		}
	}

	record, err := h.Svc.Apply(c.Request.Context(), facilityID, surviving, uploads)
	if err != nil {
		logger.Error("Failed to save documents", zap.String("facilityId", facilityID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save documents", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}
