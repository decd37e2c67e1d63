package shopRepo

import (
	"context"
	"fmt"
	"time"

	"massagefinder/database"
	"massagefinder/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	shopsCollection   = "shops"
	reviewsCollection = "reviews"
)

// FirestoreShopRepo implements ShopRepository using Firestore.
type FirestoreShopRepo struct {
	client *firestore.Client
	coll   *firestore.CollectionRef
}

// NewFirestoreShopRepo creates a new instance of ShopRepository using Firestore.
func NewFirestoreShopRepo() ShopRepository {
	client := database.FirestoreClient
	return &FirestoreShopRepo{
		client: client,
		coll:   client.Collection(shopsCollection),
	}
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// mapErr translates store status codes into the repository sentinels.
func mapErr(op string, err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%s: %w", op, ErrUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// GetAll retrieves every shop document in store order.
func (r *FirestoreShopRepo) GetAll(ctx context.Context) ([]models.Shop, error) {
	ctx, cancel := newContext(ctx, 15*time.Second)
	defer cancel()

	shops := []models.Shop{}
	iter := r.coll.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapErr("failed to retrieve shops", err)
		}
		var shop models.Shop
		if err := doc.DataTo(&shop); err != nil {
			return nil, fmt.Errorf("failed to decode shop %s: %w", doc.Ref.ID, err)
		}
		shop.ID = doc.Ref.ID
		shop.Normalize()
		shops = append(shops, shop)
	}
	return shops, nil
}

// GetByID retrieves a shop by its document ID.
func (r *FirestoreShopRepo) GetByID(ctx context.Context, id string) (*models.Shop, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	doc, err := r.coll.Doc(id).Get(ctx)
	if err != nil {
		return nil, mapErr(fmt.Sprintf("failed to fetch shop %s", id), err)
	}
	var shop models.Shop
	if err := doc.DataTo(&shop); err != nil {
		return nil, fmt.Errorf("failed to decode shop %s: %w", id, err)
	}
	shop.ID = doc.Ref.ID
	shop.Normalize()
	return &shop, nil
}

// Create inserts a new shop document with a store-assigned ID.
func (r *FirestoreShopRepo) Create(ctx context.Context, shop *models.Shop) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	doc := r.coll.NewDoc()
	if _, err := doc.Create(ctx, shop); err != nil {
		return mapErr("failed to create shop", err)
	}
	shop.ID = doc.ID
	return nil
}

// Update overwrites an existing shop document. The admin edit form submits
// every field, including the aggregates, so this is a full set rather than a
// partial update.
func (r *FirestoreShopRepo) Update(ctx context.Context, id string, shop *models.Shop) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	doc := r.coll.Doc(id)
	if _, err := doc.Get(ctx); err != nil {
		return mapErr(fmt.Sprintf("failed to fetch shop %s", id), err)
	}
	if _, err := doc.Set(ctx, shop); err != nil {
		return mapErr(fmt.Sprintf("failed to update shop %s", id), err)
	}
	shop.ID = id
	return nil
}

// Delete removes a shop document and cascade-deletes its review subcollection.
func (r *FirestoreShopRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 30*time.Second)
	defer cancel()

	shopRef := r.coll.Doc(id)
	if _, err := shopRef.Get(ctx); err != nil {
		return mapErr(fmt.Sprintf("failed to fetch shop %s", id), err)
	}

	// Reviews first, in bounded batches, then the shop document itself.
	refs := shopRef.Collection(reviewsCollection).DocumentRefs(ctx)
	batch := r.client.Batch()
	pending := 0
	for {
		ref, err := refs.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return mapErr(fmt.Sprintf("failed to list reviews for shop %s", id), err)
		}
		batch.Delete(ref)
		pending++
		if pending >= ImportBatchSize {
			if _, err := batch.Commit(ctx); err != nil {
				return mapErr(fmt.Sprintf("failed to delete reviews for shop %s", id), err)
			}
			batch = r.client.Batch()
			pending = 0
		}
	}
	batch.Delete(shopRef)
	if _, err := batch.Commit(ctx); err != nil {
		return mapErr(fmt.Sprintf("failed to delete shop %s", id), err)
	}
	return nil
}

// AddReview writes the review document and updates the shop's aggregate in a
// single transaction. Firestore retries the transaction transparently when a
// concurrent writer invalidates the read set, so the committed aggregate
// always reflects exactly the committed reviews.
func (r *FirestoreShopRepo) AddReview(ctx context.Context, shopID string, review *models.Review) (*models.ReviewResult, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	shopRef := r.coll.Doc(shopID)
	var result models.ReviewResult

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(shopRef)
		if err != nil {
			return err
		}
		var shop models.Shop
		if err := doc.DataTo(&shop); err != nil {
			return fmt.Errorf("failed to decode shop %s: %w", shopID, err)
		}
		shop.ApplyReview(review.Rating)

		reviewRef := shopRef.Collection(reviewsCollection).NewDoc()
		review.ShopID = shopID
		if err := tx.Create(reviewRef, review); err != nil {
			return err
		}
		if err := tx.Update(shopRef, []firestore.Update{
			{Path: "rating", Value: shop.Rating},
			{Path: "reviewCount", Value: shop.ReviewCount},
		}); err != nil {
			return err
		}

		result = models.ReviewResult{
			ReviewID:         reviewRef.ID,
			NewAverageRating: shop.Rating,
			NewReviewCount:   shop.ReviewCount,
		}
		return nil
	})
	if err != nil {
		return nil, mapErr(fmt.Sprintf("failed to add review to shop %s", shopID), err)
	}
	return &result, nil
}

// GetReviews retrieves a shop's reviews ordered newest first.
func (r *FirestoreShopRepo) GetReviews(ctx context.Context, shopID string) ([]models.Review, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	reviews := []models.Review{}
	iter := r.coll.Doc(shopID).Collection(reviewsCollection).
		OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapErr(fmt.Sprintf("failed to retrieve reviews for shop %s", shopID), err)
		}
		var review models.Review
		if err := doc.DataTo(&review); err != nil {
			return nil, fmt.Errorf("failed to decode review %s: %w", doc.Ref.ID, err)
		}
		review.ID = doc.Ref.ID
		review.Normalize()
		reviews = append(reviews, review)
	}
	return reviews, nil
}

// IncrementViewCount atomically adds 1 to the shop's view count. No read
// precedes the write, so concurrent increments never lose updates.
func (r *FirestoreShopRepo) IncrementViewCount(ctx context.Context, shopID string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.Doc(shopID).Update(ctx, []firestore.Update{
		{Path: "viewCount", Value: firestore.Increment(1)},
	})
	if err != nil {
		return mapErr(fmt.Sprintf("failed to increment view count for shop %s", shopID), err)
	}
	return nil
}

// SetViewCount overwrites the view count field directly.
func (r *FirestoreShopRepo) SetViewCount(ctx context.Context, shopID string, count int64) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.Doc(shopID).Update(ctx, []firestore.Update{
		{Path: "viewCount", Value: count},
	})
	if err != nil {
		return mapErr(fmt.Sprintf("failed to set view count for shop %s", shopID), err)
	}
	return nil
}

// BatchCreate inserts the given shops in one batch commit. Callers chunk the
// input to ImportBatchSize.
func (r *FirestoreShopRepo) BatchCreate(ctx context.Context, shops []*models.Shop) error {
	ctx, cancel := newContext(ctx, 30*time.Second)
	defer cancel()

	batch := r.client.Batch()
	for _, shop := range shops {
		doc := r.coll.NewDoc()
		batch.Set(doc, shop)
		shop.ID = doc.ID
	}
	if _, err := batch.Commit(ctx); err != nil {
		return mapErr("failed to commit shop batch", err)
	}
	return nil
}
