package handlers

import (
	"errors"
	"net/http"

	"massagefinder/services/inquiry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubmitInquiryHandler accepts a shop-owner inquiry from the public form.
func SubmitInquiryHandler(svc inquiry.InquiryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var input inquiry.InquiryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			logger.Warn("Invalid inquiry request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		created, err := svc.SubmitInquiry(c.Request.Context(), input)
		if err != nil {
			var verr *inquiry.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
				return
			}
			logger.Error("Failed to submit inquiry", zap.Error(err))
			respondStoreError(c, err, "Inquiry not found")
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}
