package handlers

import (
	"errors"
	"net/http"

	"massagefinder/services/review"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubmitReviewHandler accepts a new review for a shop and returns the
// updated rating aggregates.
func SubmitReviewHandler(svc review.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		shopID := c.Param("id")

		var input review.ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			logger.Warn("Invalid review request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		result, err := svc.SubmitReview(c.Request.Context(), shopID, input)
		if err != nil {
			var verr *review.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
				return
			}
			logger.Error("Failed to submit review", zap.String("shopId", shopID), zap.Error(err))
			respondStoreError(c, err, "Shop not found")
			return
		}

		c.JSON(http.StatusCreated, result)
	}
}

// ListReviewsHandler returns a shop's reviews, newest first.
func ListReviewsHandler(svc review.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		shopID := c.Param("id")

		reviews, err := svc.ListReviews(c.Request.Context(), shopID)
		if err != nil {
			var verr *review.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
				return
			}
			logger.Error("Failed to list reviews", zap.String("shopId", shopID), zap.Error(err))
			respondStoreError(c, err, "Shop not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"reviews": reviews})
	}
}

// RecordViewHandler bumps a shop's view counter. It always responds 204:
// view counting is best effort and a failed bump must never surface to the
// browsing client.
func RecordViewHandler(svc review.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc.RecordView(c.Request.Context(), c.Param("id"))
		c.Status(http.StatusNoContent)
	}
}
