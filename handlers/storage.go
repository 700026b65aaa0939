package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"allservices/services/storage"
	"allservices/utils"

	"github.com/gin-gonic/gin"
)

var allowedFolders = map[string]bool{
	"services": true,
	"profiles": true,
	"reviews":  true,
}

// StorageHandler exposes image upload and removal endpoints.
type StorageHandler struct {
	Storage storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{Storage: svc}
}

// UploadFile handles POST /api/storage/upload/:folder. The file is
// staged in the OS temp dir before being pushed to Cloudinary.
func (h *StorageHandler) UploadFile(c *gin.Context) {
	folder := c.Param("folder")
	if !allowedFolders[folder] {
		utils.JSONError(c, http.StatusBadRequest, "Invalid folder; allowed values are 'services', 'profiles' and 'reviews'", "")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "File not provided", err.Error())
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save file", err.Error())
		return
	}
	defer os.Remove(tempFilePath)

	url, err := h.Storage.UploadFile(c.Request.Context(), tempFilePath, folder)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to upload file", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded successfully",
		"url":     url,
	})
}

// DeleteFile handles DELETE /api/storage/:publicId.
func (h *StorageHandler) DeleteFile(c *gin.Context) {
	publicID := c.Param("publicId")
	if publicID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Public ID is required", "")
		return
	}

	if err := h.Storage.DeleteFile(c.Request.Context(), publicID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete file", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}
