package shopRepo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"massagefinder/models"

	"github.com/google/uuid"
)

// maxTxAttempts bounds the optimistic retry loop. Exhaustion surfaces as
// ErrUnavailable, matching what the hosted store does when contention never
// resolves.
const maxTxAttempts = 20

type memoryShopDoc struct {
	shop    models.Shop
	version uint64
}

// MemoryShopRepo implements ShopRepository entirely in memory. It is the
// store backing local development (no Firebase credentials) and the service
// tests. AddReview mirrors the hosted store's optimistic-concurrency
// transaction: read a versioned snapshot, compute outside the lock, commit
// only if the version is unchanged, retry otherwise.
type MemoryShopRepo struct {
	mu      sync.Mutex
	shops   map[string]*memoryShopDoc
	order   []string
	reviews map[string][]models.Review
}

// NewMemoryShopRepo creates an empty in-memory ShopRepository.
func NewMemoryShopRepo() *MemoryShopRepo {
	return &MemoryShopRepo{
		shops:   make(map[string]*memoryShopDoc),
		reviews: make(map[string][]models.Review),
	}
}

func (r *MemoryShopRepo) GetAll(ctx context.Context) ([]models.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	shops := make([]models.Shop, 0, len(r.order))
	for _, id := range r.order {
		doc, ok := r.shops[id]
		if !ok {
			continue
		}
		shop := doc.shop
		shop.Normalize()
		shops = append(shops, shop)
	}
	return shops, nil
}

func (r *MemoryShopRepo) GetByID(ctx context.Context, id string) (*models.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.shops[id]
	if !ok {
		return nil, fmt.Errorf("failed to fetch shop %s: %w", id, ErrNotFound)
	}
	shop := doc.shop
	shop.Normalize()
	return &shop, nil
}

func (r *MemoryShopRepo) Create(ctx context.Context, shop *models.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	shop.ID = uuid.NewString()
	stored := *shop
	r.shops[shop.ID] = &memoryShopDoc{shop: stored}
	r.order = append(r.order, shop.ID)
	return nil
}

func (r *MemoryShopRepo) Update(ctx context.Context, id string, shop *models.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.shops[id]
	if !ok {
		return fmt.Errorf("failed to update shop %s: %w", id, ErrNotFound)
	}
	shop.ID = id
	doc.shop = *shop
	doc.version++
	return nil
}

func (r *MemoryShopRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.shops[id]; !ok {
		return fmt.Errorf("failed to delete shop %s: %w", id, ErrNotFound)
	}
	delete(r.shops, id)
	delete(r.reviews, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryShopRepo) AddReview(ctx context.Context, shopID string, review *models.Review) (*models.ReviewResult, error) {
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		// Read phase: snapshot the shop and its version.
		r.mu.Lock()
		doc, ok := r.shops[shopID]
		if !ok {
			r.mu.Unlock()
			return nil, fmt.Errorf("failed to add review to shop %s: %w", shopID, ErrNotFound)
		}
		snapshot := doc.shop
		readVersion := doc.version
		r.mu.Unlock()

		// Compute phase, outside the lock like a real transaction body.
		snapshot.ApplyReview(review.Rating)

		// Commit phase: succeeds only if no concurrent writer got in between.
		r.mu.Lock()
		doc, ok = r.shops[shopID]
		if !ok {
			r.mu.Unlock()
			return nil, fmt.Errorf("failed to add review to shop %s: %w", shopID, ErrNotFound)
		}
		if doc.version != readVersion {
			r.mu.Unlock()
			continue
		}
		doc.shop.Rating = snapshot.Rating
		doc.shop.ReviewCount = snapshot.ReviewCount
		doc.version++

		stored := *review
		stored.ID = uuid.NewString()
		stored.ShopID = shopID
		if stored.CreatedAt.IsZero() {
			stored.CreatedAt = time.Now()
		}
		r.reviews[shopID] = append(r.reviews[shopID], stored)
		r.mu.Unlock()

		return &models.ReviewResult{
			ReviewID:         stored.ID,
			NewAverageRating: snapshot.Rating,
			NewReviewCount:   snapshot.ReviewCount,
		}, nil
	}
	return nil, fmt.Errorf("failed to add review to shop %s: transaction retries exhausted: %w", shopID, ErrUnavailable)
}

func (r *MemoryShopRepo) GetReviews(ctx context.Context, shopID string) ([]models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.shops[shopID]; !ok {
		return nil, fmt.Errorf("failed to retrieve reviews for shop %s: %w", shopID, ErrNotFound)
	}
	reviews := make([]models.Review, len(r.reviews[shopID]))
	copy(reviews, r.reviews[shopID])
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	for i := range reviews {
		reviews[i].Normalize()
	}
	return reviews, nil
}

func (r *MemoryShopRepo) IncrementViewCount(ctx context.Context, shopID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.shops[shopID]
	if !ok {
		return fmt.Errorf("failed to increment view count for shop %s: %w", shopID, ErrNotFound)
	}
	// A plain add under the lock: commutative, never read-modify-write racy.
	doc.shop.ViewCount++
	return nil
}

func (r *MemoryShopRepo) SetViewCount(ctx context.Context, shopID string, count int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.shops[shopID]
	if !ok {
		return fmt.Errorf("failed to set view count for shop %s: %w", shopID, ErrNotFound)
	}
	doc.shop.ViewCount = count
	doc.version++
	return nil
}

func (r *MemoryShopRepo) BatchCreate(ctx context.Context, shops []*models.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, shop := range shops {
		shop.ID = uuid.NewString()
		stored := *shop
		r.shops[shop.ID] = &memoryShopDoc{shop: stored}
		r.order = append(r.order, shop.ID)
	}
	return nil
}
