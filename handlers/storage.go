package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"massagefinder/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UploadShopImageHandler uploads a shop photo and returns its public URL
// for use as the shop's imageUrl. svc may be nil when no image storage is
// configured.
func UploadShopImageHandler(svc storage.StorageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		if svc == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image uploads not configured"})
			return
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
			return
		}

		tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
		if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
			return
		}
		defer os.Remove(tempFilePath)

		url, err := svc.UploadShopImage(c.Request.Context(), tempFilePath)
		if err != nil {
			logger.Error("Shop image upload failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image", "detail": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"imageUrl": url})
	}
}

// DeleteShopImageHandler removes an uploaded shop image by its public ID,
// passed as the publicId query parameter since IDs contain slashes.
func DeleteShopImageHandler(svc storage.StorageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		if svc == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image uploads not configured"})
			return
		}

		publicID := c.Query("publicId")
		if publicID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "publicId not provided"})
			return
		}

		if err := svc.DeleteShopImage(c.Request.Context(), publicID); err != nil {
			logger.Error("Shop image deletion failed", zap.String("publicId", publicID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete image", "detail": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
	}
}
