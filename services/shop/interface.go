package shop

import (
	"context"
	"time"

	"massagefinder/models"

	"github.com/go-redis/redis/v8"

	shopRepo "massagefinder/database/repository/shop"
)

// MaxRecommendedShops caps the recommendation rotation returned to the
// listing banner.
const MaxRecommendedShops = 8

// ShopService defines the public and admin shop operations.
type ShopService interface {
	// ListShops returns the full listing, filtered by the keyword query.
	// An empty or whitespace-only query returns all shops in store order.
	ListShops(ctx context.Context, query string) ([]models.Shop, error)
	// RecommendedShops returns a shuffled sample of recommended shops,
	// capped at MaxRecommendedShops.
	RecommendedShops(ctx context.Context) ([]models.Shop, error)
	// GetShop returns a single shop by ID.
	GetShop(ctx context.Context, id string) (*models.Shop, error)
	// CreateShop registers a new shop with zeroed aggregates.
	CreateShop(ctx context.Context, shop models.Shop) (*models.Shop, error)
	// UpdateShop overwrites an existing shop, aggregates included.
	UpdateShop(ctx context.Context, id string, shop models.Shop) (*models.Shop, error)
	// DeleteShop removes a shop and its reviews.
	DeleteShop(ctx context.Context, id string) error
	// InvalidateListingCache drops the cached full listing. Called after
	// writes that bypass this service, such as a bulk import.
	InvalidateListingCache(ctx context.Context)
}

// DefaultShopService is the production implementation of ShopService.
type DefaultShopService struct {
	Repo shopRepo.ShopRepository
	// Cache holds the serialized full listing under utils.ListingCacheKey.
	// Nil disables caching entirely.
	Cache    *redis.Client
	CacheTTL time.Duration
}
