package review

import (
	"context"

	"massagefinder/models"

	shopRepo "massagefinder/database/repository/shop"
)

// ReviewInput carries the caller-supplied fields of a new review.
type ReviewInput struct {
	AuthorName string `json:"authorName"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// ReviewService defines review submission, review listing and the
// view counter.
type ReviewService interface {
	// SubmitReview validates the input, then writes the review and the
	// shop's rating/reviewCount aggregate in one atomic transaction.
	SubmitReview(ctx context.Context, shopID string, input ReviewInput) (*models.ReviewResult, error)
	// ListReviews returns a shop's reviews, newest first.
	ListReviews(ctx context.Context, shopID string) ([]models.Review, error)
	// RecordView bumps the shop's view count, best effort. Failures are
	// logged and swallowed; a lost view is an acceptable loss.
	RecordView(ctx context.Context, shopID string)
}

// ListingInvalidator drops the cached shop listing after a write that
// changes listed fields. Satisfied by the shop service.
type ListingInvalidator interface {
	InvalidateListingCache(ctx context.Context)
}

// DefaultReviewService is the production implementation of ReviewService.
type DefaultReviewService struct {
	Repo shopRepo.ShopRepository
	// Listing, when set, is invalidated after each committed review, since
	// the submission changes the shop's listed rating and review count.
	Listing ListingInvalidator
}
