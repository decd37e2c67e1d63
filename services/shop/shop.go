package shop

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"massagefinder/models"
	"massagefinder/utils"

	"go.uber.org/zap"
)

// ListShops returns the (possibly cached) full listing filtered by query.
func (s *DefaultShopService) ListShops(ctx context.Context, query string) ([]models.Shop, error) {
	shops, err := s.loadListing(ctx)
	if err != nil {
		return nil, err
	}
	return FilterShops(shops, query), nil
}

// RecommendedShops returns a shuffled sample of the recommendation rotation.
func (s *DefaultShopService) RecommendedShops(ctx context.Context) ([]models.Shop, error) {
	shops, err := s.loadListing(ctx)
	if err != nil {
		return nil, err
	}
	recommended := []models.Shop{}
	for _, shop := range shops {
		if shop.IsRecommended {
			recommended = append(recommended, shop)
		}
	}
	rand.Shuffle(len(recommended), func(i, j int) {
		recommended[i], recommended[j] = recommended[j], recommended[i]
	})
	if len(recommended) > MaxRecommendedShops {
		recommended = recommended[:MaxRecommendedShops]
	}
	return recommended, nil
}

// GetShop returns a single shop by ID.
func (s *DefaultShopService) GetShop(ctx context.Context, id string) (*models.Shop, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &ValidationError{Field: "id", Message: "must not be empty"}
	}
	return s.Repo.GetByID(ctx, id)
}

// CreateShop registers a new shop. Aggregates start at zero unless the admin
// form explicitly seeded them.
func (s *DefaultShopService) CreateShop(ctx context.Context, shop models.Shop) (*models.Shop, error) {
	if err := validateShop(&shop); err != nil {
		return nil, err
	}
	sanitizeShop(&shop)
	if err := s.Repo.Create(ctx, &shop); err != nil {
		return nil, fmt.Errorf("failed to create shop: %w", err)
	}
	s.InvalidateListingCache(ctx)
	return &shop, nil
}

// UpdateShop overwrites an existing shop with the submitted fields. The admin
// form submits the whole document, so rating/reviewCount may be overwritten
// here too; the narrow race against a concurrent review submission is
// accepted as last-writer-wins.
func (s *DefaultShopService) UpdateShop(ctx context.Context, id string, shop models.Shop) (*models.Shop, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &ValidationError{Field: "id", Message: "must not be empty"}
	}
	if err := validateShop(&shop); err != nil {
		return nil, err
	}
	sanitizeShop(&shop)
	if err := s.Repo.Update(ctx, id, &shop); err != nil {
		return nil, fmt.Errorf("failed to update shop %s: %w", id, err)
	}
	s.InvalidateListingCache(ctx)
	return &shop, nil
}

// DeleteShop removes a shop together with its review subcollection.
func (s *DefaultShopService) DeleteShop(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{Field: "id", Message: "must not be empty"}
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.InvalidateListingCache(ctx)
	return nil
}

// InvalidateListingCache drops the cached listing snapshot.
func (s *DefaultShopService) InvalidateListingCache(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.ListingCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate listing cache", zap.Error(err))
	}
}

// loadListing fetches the full shop listing, serving from the redis snapshot
// when one is present. Cache failures fall through to the store.
func (s *DefaultShopService) loadListing(ctx context.Context) ([]models.Shop, error) {
	logger := utils.GetLogger()
	if s.Cache != nil {
		raw, err := s.Cache.Get(ctx, utils.ListingCacheKey).Result()
		if err == nil {
			var shops []models.Shop
			if err := json.Unmarshal([]byte(raw), &shops); err == nil {
				return shops, nil
			}
			logger.Warn("discarding corrupt listing cache entry")
		}
	}

	shops, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load shop listing: %w", err)
	}

	if s.Cache != nil && s.CacheTTL > 0 {
		if raw, err := json.Marshal(shops); err == nil {
			if err := s.Cache.Set(ctx, utils.ListingCacheKey, raw, s.CacheTTL).Err(); err != nil {
				logger.Warn("failed to cache shop listing", zap.Error(err))
			}
		}
	}
	return shops, nil
}

func validateShop(shop *models.Shop) error {
	if strings.TrimSpace(shop.Name) == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if strings.TrimSpace(shop.Description) == "" {
		return &ValidationError{Field: "description", Message: "must not be empty"}
	}
	if strings.TrimSpace(shop.Address) == "" {
		return &ValidationError{Field: "address", Message: "must not be empty"}
	}
	return nil
}

// sanitizeShop trims free-text fields and clamps the aggregates before a
// write. Placeholders are a read-time concern and are never stored.
func sanitizeShop(shop *models.Shop) {
	shop.Name = strings.TrimSpace(shop.Name)
	shop.Description = strings.TrimSpace(shop.Description)
	shop.Address = strings.TrimSpace(shop.Address)
	shop.ImageURL = strings.TrimSpace(shop.ImageURL)
	shop.PhoneNumber = strings.TrimSpace(shop.PhoneNumber)
	shop.OperatingHours = strings.TrimSpace(shop.OperatingHours)

	if shop.Rating < 0 {
		shop.Rating = 0
	} else if shop.Rating > 5 {
		shop.Rating = 5
	}
	if shop.ReviewCount < 0 {
		shop.ReviewCount = 0
	}
	if shop.ViewCount < 0 {
		shop.ViewCount = 0
	}

	preview := shop.ServicesPreview[:0]
	for _, sp := range shop.ServicesPreview {
		if trimmed := strings.TrimSpace(sp); trimmed != "" {
			preview = append(preview, trimmed)
		}
	}
	shop.ServicesPreview = preview

	services := shop.DetailedServices[:0]
	for _, ds := range shop.DetailedServices {
		ds.Name = strings.TrimSpace(ds.Name)
		ds.Price = strings.TrimSpace(ds.Price)
		if ds.Name != "" || ds.Price != "" {
			services = append(services, ds)
		}
	}
	shop.DetailedServices = services
}
