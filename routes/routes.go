package routes

import (
	"net/http"
	"time"

	"massagefinder/handlers"
	"massagefinder/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterShopRoutes registers the public browsing endpoints.
func RegisterShopRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/shops")
	{
		api.GET("", hb.ListShopsHandler)
		api.GET("/:id", hb.GetShopHandler)
		api.POST("/:id/view", hb.RecordViewHandler)
		api.GET("/:id/reviews", hb.ListReviewsHandler)
		api.POST("/:id/reviews", hb.SubmitReview)
	}
}

// RegisterInquiryRoutes registers the public owner-inquiry endpoint.
func RegisterInquiryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/inquiries", hb.SubmitInquiryHandler)
}

// RegisterAdminRoutes sets up the admin console endpoints. The whole group
// sits behind Firebase ID-token verification.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(hb.AdminAuth)
		adminGroup.POST("/shops", hb.CreateShopHandler)
		adminGroup.PUT("/shops/:id", hb.UpdateShopHandler)
		adminGroup.DELETE("/shops/:id", hb.DeleteShopHandler)
		adminGroup.POST("/shops/import", hb.ImportShopsHandler)
		adminGroup.GET("/shops/export", hb.ExportShopsHandler)

		adminGroup.GET("/inquiries", hb.ListInquiriesHandler)
		adminGroup.PUT("/inquiries/:id/status", hb.UpdateInquiryStatusHandler)
		adminGroup.DELETE("/inquiries/:id", hb.DeleteInquiryHandler)

		adminGroup.POST("/uploads/shop-image", hb.UploadShopImageHandler)
		adminGroup.DELETE("/uploads/shop-image", hb.DeleteShopImageHandler)
	}
}

// RegisterHealthRoute exposes a liveness probe.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(utils.ErrorHandler())

	RegisterHealthRoute(r)
	RegisterShopRoutes(r, hb)
	RegisterInquiryRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
