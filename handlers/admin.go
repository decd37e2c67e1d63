package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"massagefinder/models"
	"massagefinder/services/bulk"
	"massagefinder/services/inquiry"
	"massagefinder/services/shop"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxImportSize bounds uploaded spreadsheets at 10 MiB.
const maxImportSize = 10 << 20

// CreateShopHandler registers a new shop.
func CreateShopHandler(svc shop.ShopService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var payload models.Shop
		if err := c.ShouldBindJSON(&payload); err != nil {
			logger.Warn("Invalid shop creation request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		created, err := svc.CreateShop(c.Request.Context(), payload)
		if err != nil {
			var verr *shop.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
				return
			}
			logger.Error("Failed to create shop", zap.Error(err))
			respondStoreError(c, err, "Shop not found")
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// UpdateShopHandler overwrites an existing shop.
func UpdateShopHandler(svc shop.ShopService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		id := c.Param("id")

		var payload models.Shop
		if err := c.ShouldBindJSON(&payload); err != nil {
			logger.Warn("Invalid shop update request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		updated, err := svc.UpdateShop(c.Request.Context(), id, payload)
		if err != nil {
			var verr *shop.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
				return
			}
			logger.Error("Failed to update shop", zap.String("id", id), zap.Error(err))
			respondStoreError(c, err, "Shop not found")
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

// DeleteShopHandler removes a shop together with its reviews.
func DeleteShopHandler(svc shop.ShopService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		id := c.Param("id")

		if err := svc.DeleteShop(c.Request.Context(), id); err != nil {
			logger.Error("Failed to delete shop", zap.String("id", id), zap.Error(err))
			respondStoreError(c, err, "Shop not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Shop deleted"})
	}
}

// ImportShopsHandler ingests an uploaded spreadsheet of shop rows. Skipped
// rows come back as warnings alongside the counts; only a batch commit
// failure turns the response into an error, and even then the rows already
// committed stay committed.
func ImportShopsHandler(bulkSvc bulk.BulkService, shopSvc shop.ShopService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
			return
		}
		if fileHeader.Size > maxImportSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open file", "detail": err.Error()})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file", "detail": err.Error()})
			return
		}

		result, err := bulkSvc.ImportShops(c.Request.Context(), fileHeader.Filename, data)
		if result != nil && result.Succeeded > 0 {
			shopSvc.InvalidateListingCache(c.Request.Context())
		}
		if err != nil {
			logger.Error("Bulk import failed", zap.String("file", fileHeader.Filename), zap.Error(err))
			if result != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "result": result})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// ExportShopsHandler streams the full listing as an xlsx download.
func ExportShopsHandler(svc bulk.BulkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		data, err := svc.ExportShops(c.Request.Context())
		if err != nil {
			logger.Error("Bulk export failed", zap.Error(err))
			respondStoreError(c, err, "Shops not found")
			return
		}

		filename := fmt.Sprintf("shops-%s.xlsx", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	}
}

// ListInquiriesHandler returns all owner inquiries, newest first.
func ListInquiriesHandler(svc inquiry.InquiryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		inquiries, err := svc.ListInquiries(c.Request.Context())
		if err != nil {
			logger.Error("Failed to list inquiries", zap.Error(err))
			respondStoreError(c, err, "Inquiries not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"inquiries": inquiries})
	}
}

type inquiryStatusRequest struct {
	Status models.InquiryStatus `json:"status"`
}

// UpdateInquiryStatusHandler transitions an inquiry between the tracking
// states.
func UpdateInquiryStatusHandler(svc inquiry.InquiryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		id := c.Param("id")

		var req inquiryStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := svc.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
			var verr *inquiry.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
				return
			}
			logger.Error("Failed to update inquiry status", zap.String("id", id), zap.Error(err))
			respondStoreError(c, err, "Inquiry not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Inquiry updated"})
	}
}

// DeleteInquiryHandler removes an inquiry from the tracker.
func DeleteInquiryHandler(svc inquiry.InquiryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		id := c.Param("id")

		if err := svc.DeleteInquiry(c.Request.Context(), id); err != nil {
			logger.Error("Failed to delete inquiry", zap.String("id", id), zap.Error(err))
			respondStoreError(c, err, "Inquiry not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Inquiry deleted"})
	}
}
