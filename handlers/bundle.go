package handlers

import (
	shopRepoPkg "massagefinder/database/repository/shop"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	ShopRepo shopRepoPkg.ShopRepository

	// Middleware guarding the admin console group.
	AdminAuth gin.HandlerFunc

	// Public shop endpoints
	ListShopsHandler   gin.HandlerFunc
	GetShopHandler     gin.HandlerFunc
	RecordViewHandler  gin.HandlerFunc
	ListReviewsHandler gin.HandlerFunc
	SubmitReview       gin.HandlerFunc

	// Public inquiry endpoint
	SubmitInquiryHandler gin.HandlerFunc

	// Admin shop endpoints
	CreateShopHandler  gin.HandlerFunc
	UpdateShopHandler  gin.HandlerFunc
	DeleteShopHandler  gin.HandlerFunc
	ImportShopsHandler gin.HandlerFunc
	ExportShopsHandler gin.HandlerFunc

	// Admin inquiry endpoints
	ListInquiriesHandler       gin.HandlerFunc
	UpdateInquiryStatusHandler gin.HandlerFunc
	DeleteInquiryHandler       gin.HandlerFunc

	// Admin upload endpoints
	UploadShopImageHandler gin.HandlerFunc
	DeleteShopImageHandler gin.HandlerFunc
}
