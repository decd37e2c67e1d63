package shopRepo

import (
	"context"
	"errors"

	"massagefinder/models"
)

// Sentinel errors mapped from store-level failures. Callers test with errors.Is.
var (
	// ErrNotFound signals that the referenced shop does not exist.
	ErrNotFound = errors.New("shop not found")
	// ErrUnavailable signals that the document store could not be reached.
	ErrUnavailable = errors.New("store unavailable")
)

// ImportBatchSize bounds the number of writes per batch commit, kept well
// under Firestore's 500-write transaction limit.
const ImportBatchSize = 499

// ShopRepository defines data access for shop documents and their review
// subcollections. The review aggregate (rating/reviewCount) is only ever
// written through AddReview; the view counter only through IncrementViewCount.
type ShopRepository interface {
	// GetAll retrieves every shop, normalized, in stable store order.
	GetAll(ctx context.Context) ([]models.Shop, error)
	// GetByID retrieves a single shop by its document ID.
	GetByID(ctx context.Context, id string) (*models.Shop, error)
	// Create inserts a new shop document and assigns its ID.
	Create(ctx context.Context, shop *models.Shop) error
	// Update overwrites an existing shop document.
	Update(ctx context.Context, id string, shop *models.Shop) error
	// Delete removes a shop document together with its review subcollection.
	Delete(ctx context.Context, id string) error

	// AddReview writes the review and updates the shop's rating/reviewCount
	// aggregate in one atomic transaction.
	AddReview(ctx context.Context, shopID string, review *models.Review) (*models.ReviewResult, error)
	// GetReviews retrieves a shop's reviews, newest first.
	GetReviews(ctx context.Context, shopID string) ([]models.Review, error)

	// IncrementViewCount atomically adds 1 to the shop's view count.
	IncrementViewCount(ctx context.Context, shopID string) error
	// SetViewCount overwrites the view count directly. Used only by the
	// seedviews demo utility, never by the serving path.
	SetViewCount(ctx context.Context, shopID string, count int64) error

	// BatchCreate inserts up to ImportBatchSize shops in one batch commit.
	BatchCreate(ctx context.Context, shops []*models.Shop) error
}
