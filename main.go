package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"massagefinder/config"
	"massagefinder/database"
	inquiryRepoPkg "massagefinder/database/repository/inquiry"
	shopRepoPkg "massagefinder/database/repository/shop"
	"massagefinder/handlers"
	"massagefinder/middleware"
	"massagefinder/routes"
	"massagefinder/services/bulk"
	"massagefinder/services/inquiry"
	"massagefinder/services/review"
	"massagefinder/services/shop"
	"massagefinder/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	var (
		shopRepo    shopRepoPkg.ShopRepository
		inquiryRepo inquiryRepoPkg.InquiryRepository

		listingCache *redis.Client
		authCache    *redis.Client
		verifier     middleware.TokenVerifier
	)

	if config.AppConfig.FirebaseProjectID != "" {
		database.InitDB()
		utils.FirebaseInit()
		utils.InitCache()
		utils.InitAuthCache()

		shopRepo = shopRepoPkg.NewFirestoreShopRepo()
		inquiryRepo = inquiryRepoPkg.NewFirestoreInquiryRepo()
		listingCache = utils.GetCacheClient()
		authCache = utils.GetAuthCacheClient()
		verifier = utils.AuthClient
	} else {
		// No Firebase project configured: run against the in-memory store.
		// Admin routes accept the development token only.
		logger.Warn("FIREBASE_PROJECT_ID not set, using in-memory store")
		shopRepo = shopRepoPkg.NewMemoryShopRepo()
		inquiryRepo = inquiryRepoPkg.NewMemoryInquiryRepo()
	}

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Warn("main: image storage disabled", zap.Error(err))
		storageService = nil
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	shopService := &shop.DefaultShopService{
		Repo:     shopRepo,
		Cache:    listingCache,
		CacheTTL: time.Duration(config.AppConfig.ListingCacheTTL) * time.Second,
	}
	reviewService := &review.DefaultReviewService{Repo: shopRepo, Listing: shopService}
	inquiryService := &inquiry.DefaultInquiryService{Repo: inquiryRepo}
	bulkService := &bulk.DefaultBulkService{Repo: shopRepo}

	handlerBundle := &handlers.HandlerBundle{
		ShopRepo: shopRepo,

		AdminAuth: middleware.AdminAuthMiddleware(verifier, authCache),

		ListShopsHandler:   handlers.ListShopsHandler(shopService),
		GetShopHandler:     handlers.GetShopHandler(shopService),
		RecordViewHandler:  handlers.RecordViewHandler(reviewService),
		ListReviewsHandler: handlers.ListReviewsHandler(reviewService),
		SubmitReview:       handlers.SubmitReviewHandler(reviewService),

		SubmitInquiryHandler: handlers.SubmitInquiryHandler(inquiryService),

		CreateShopHandler:  handlers.CreateShopHandler(shopService),
		UpdateShopHandler:  handlers.UpdateShopHandler(shopService),
		DeleteShopHandler:  handlers.DeleteShopHandler(shopService),
		ImportShopsHandler: handlers.ImportShopsHandler(bulkService, shopService),
		ExportShopsHandler: handlers.ExportShopsHandler(bulkService),

		ListInquiriesHandler:       handlers.ListInquiriesHandler(inquiryService),
		UpdateInquiryStatusHandler: handlers.UpdateInquiryStatusHandler(inquiryService),
		DeleteInquiryHandler:       handlers.DeleteInquiryHandler(inquiryService),

		UploadShopImageHandler: handlers.UploadShopImageHandler(storageService),
		DeleteShopImageHandler: handlers.DeleteShopImageHandler(storageService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
