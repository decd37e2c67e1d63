package review

import (
	"context"
	"errors"
	"sync"
	"testing"

	"massagefinder/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shopRepo "massagefinder/database/repository/shop"
)

func newTestReviewService(t *testing.T) (*DefaultReviewService, *shopRepo.MemoryShopRepo, string) {
	t.Helper()
	repo := shopRepo.NewMemoryShopRepo()
	shop := &models.Shop{Name: "Lotus Spa", Description: "calm", Address: "Seoul"}
	require.NoError(t, repo.Create(context.Background(), shop))
	return &DefaultReviewService{Repo: repo}, repo, shop.ID
}

func validInput() ReviewInput {
	return ReviewInput{AuthorName: "mina", Rating: 4, Comment: "great pressure"}
}

func TestSubmitReviewValidation(t *testing.T) {
	svc, _, shopID := newTestReviewService(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		shopID    string
		mutate    func(*ReviewInput)
		wantField string
	}{
		{"empty shop id", "", func(*ReviewInput) {}, "shopId"},
		{"blank author", shopID, func(in *ReviewInput) { in.AuthorName = "  " }, "authorName"},
		{"blank comment", shopID, func(in *ReviewInput) { in.Comment = "" }, "comment"},
		{"rating too low", shopID, func(in *ReviewInput) { in.Rating = 0 }, "rating"},
		{"rating too high", shopID, func(in *ReviewInput) { in.Rating = 6 }, "rating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			_, err := svc.SubmitReview(ctx, tt.shopID, input)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}

	// Nothing may reach the store on a validation failure.
	reviews, err := svc.ListReviews(ctx, shopID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestSubmitReviewUnknownShop(t *testing.T) {
	svc, _, _ := newTestReviewService(t)
	_, err := svc.SubmitReview(context.Background(), "no-such-shop", validInput())
	assert.ErrorIs(t, err, shopRepo.ErrNotFound)
}

func TestSubmitReviewAggregates(t *testing.T) {
	svc, repo, shopID := newTestReviewService(t)
	ctx := context.Background()

	steps := []struct {
		rating    int
		wantAvg   float64
		wantCount int
	}{
		{4, 4.0, 1},
		{5, 4.5, 2},
		{5, 4.7, 3},
		{1, 3.8, 4},
	}

	for _, step := range steps {
		input := validInput()
		input.Rating = step.rating
		result, err := svc.SubmitReview(ctx, shopID, input)
		require.NoError(t, err)
		assert.NotEmpty(t, result.ReviewID)
		assert.InDelta(t, step.wantAvg, result.NewAverageRating, 1e-9)
		assert.Equal(t, step.wantCount, result.NewReviewCount)
	}

	shop, err := repo.GetByID(ctx, shopID)
	require.NoError(t, err)
	assert.InDelta(t, 3.8, shop.Rating, 1e-9)
	assert.Equal(t, 4, shop.ReviewCount)

	reviews, err := svc.ListReviews(ctx, shopID)
	require.NoError(t, err)
	assert.Len(t, reviews, 4)
}

func TestSubmitReviewConcurrent(t *testing.T) {
	svc, repo, shopID := newTestReviewService(t)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			input := validInput()
			input.Rating = i%5 + 1
			_, err := svc.SubmitReview(ctx, shopID, input)
			errs[i] = err
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "submission %d", i)
	}

	// Every committed review must be reflected in the aggregate: no lost
	// updates under contention.
	shop, err := repo.GetByID(ctx, shopID)
	require.NoError(t, err)
	assert.Equal(t, n, shop.ReviewCount)
	assert.GreaterOrEqual(t, shop.Rating, 1.0)
	assert.LessOrEqual(t, shop.Rating, 5.0)

	reviews, err := svc.ListReviews(ctx, shopID)
	require.NoError(t, err)
	assert.Len(t, reviews, n)
}

// countingInvalidator records listing cache invalidations.
type countingInvalidator struct {
	calls int
}

func (c *countingInvalidator) InvalidateListingCache(ctx context.Context) {
	c.calls++
}

func TestSubmitReviewInvalidatesListing(t *testing.T) {
	svc, _, shopID := newTestReviewService(t)
	inv := &countingInvalidator{}
	svc.Listing = inv
	ctx := context.Background()

	// A committed review changes the listed aggregates, so the cached
	// listing must be dropped.
	_, err := svc.SubmitReview(ctx, shopID, validInput())
	require.NoError(t, err)
	assert.Equal(t, 1, inv.calls)

	// Rejected input never reaches the store and must not invalidate.
	bad := validInput()
	bad.Rating = 0
	_, err = svc.SubmitReview(ctx, shopID, bad)
	require.Error(t, err)
	assert.Equal(t, 1, inv.calls)

	// Neither does a store failure.
	_, err = svc.SubmitReview(ctx, "no-such-shop", validInput())
	require.Error(t, err)
	assert.Equal(t, 1, inv.calls)
}

func TestRecordView(t *testing.T) {
	svc, repo, shopID := newTestReviewService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		svc.RecordView(ctx, shopID)
	}

	shop, err := repo.GetByID(ctx, shopID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), shop.ViewCount)
}

// failingViewRepo simulates a store that rejects view-count increments.
type failingViewRepo struct {
	shopRepo.ShopRepository
}

func (r *failingViewRepo) IncrementViewCount(ctx context.Context, shopID string) error {
	return errors.New("increment rejected")
}

func TestRecordViewSwallowsFailure(t *testing.T) {
	svc, repo, shopID := newTestReviewService(t)
	svc.Repo = &failingViewRepo{ShopRepository: repo}
	ctx := context.Background()

	// Must not panic or surface the failure in any way.
	svc.RecordView(ctx, shopID)
	svc.RecordView(ctx, "no-such-shop")

	shop, err := repo.GetByID(ctx, shopID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), shop.ViewCount)
}
