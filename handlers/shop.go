package handlers

import (
	"net/http"

	"massagefinder/services/shop"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListShopsHandler returns the shop listing. The optional "q" parameter
// filters by keywords, and "recommended=true" switches to the recommended
// rotation instead.
func ListShopsHandler(svc shop.ShopService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		if c.Query("recommended") == "true" {
			shops, err := svc.RecommendedShops(c.Request.Context())
			if err != nil {
				logger.Error("Failed to load recommended shops", zap.Error(err))
				respondStoreError(c, err, "Shops not found")
				return
			}
			c.JSON(http.StatusOK, gin.H{"shops": shops})
			return
		}

		shops, err := svc.ListShops(c.Request.Context(), c.Query("q"))
		if err != nil {
			logger.Error("Failed to load shop listing", zap.Error(err))
			respondStoreError(c, err, "Shops not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"shops": shops})
	}
}

// GetShopHandler returns details for a single shop.
func GetShopHandler(svc shop.ShopService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		id := c.Param("id")

		found, err := svc.GetShop(c.Request.Context(), id)
		if err != nil {
			logger.Warn("Shop lookup failed", zap.String("id", id), zap.Error(err))
			respondStoreError(c, err, "Shop not found")
			return
		}
		c.JSON(http.StatusOK, found)
	}
}
