package handlers

import (
	"errors"
	"net/http"

	inquiryRepo "massagefinder/database/repository/inquiry"
	shopRepo "massagefinder/database/repository/shop"
	"massagefinder/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves a Zap logger from the Gin context or falls back to the
// shared application logger.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// respondStoreError translates the repository sentinels into HTTP statuses.
// Each repository package carries its own sentinel pair, so both are matched
// here. Anything unrecognized is a plain 500.
func respondStoreError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, shopRepo.ErrNotFound), errors.Is(err, inquiryRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, shopRepo.ErrUnavailable), errors.Is(err, inquiryRepo.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Store temporarily unavailable, please retry"})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}
