package review

import (
	"context"
	"fmt"
	"strings"

	"massagefinder/models"
	"massagefinder/utils"

	"go.uber.org/zap"
)

// ValidationError signals malformed review input, caught before any store call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// SubmitReview runs the rating aggregation. Validation happens entirely
// before the store is touched; the repository's transaction guarantees the
// review document and the aggregate update commit together or not at all.
func (s *DefaultReviewService) SubmitReview(ctx context.Context, shopID string, input ReviewInput) (*models.ReviewResult, error) {
	if strings.TrimSpace(shopID) == "" {
		return nil, &ValidationError{Field: "shopId", Message: "must not be empty"}
	}
	input.AuthorName = strings.TrimSpace(input.AuthorName)
	if input.AuthorName == "" {
		return nil, &ValidationError{Field: "authorName", Message: "must not be empty"}
	}
	input.Comment = strings.TrimSpace(input.Comment)
	if input.Comment == "" {
		return nil, &ValidationError{Field: "comment", Message: "must not be empty"}
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, &ValidationError{Field: "rating", Message: "must be an integer between 1 and 5"}
	}

	review := &models.Review{
		AuthorName: input.AuthorName,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	result, err := s.Repo.AddReview(ctx, shopID, review)
	if err != nil {
		return nil, err
	}
	if s.Listing != nil {
		s.Listing.InvalidateListingCache(ctx)
	}
	utils.GetLogger().Info("review submitted",
		zap.String("shopID", shopID),
		zap.String("reviewID", result.ReviewID),
		zap.Float64("newAverageRating", result.NewAverageRating),
		zap.Int("newReviewCount", result.NewReviewCount),
	)
	return result, nil
}

// ListReviews returns a shop's reviews, newest first.
func (s *DefaultReviewService) ListReviews(ctx context.Context, shopID string) ([]models.Review, error) {
	if strings.TrimSpace(shopID) == "" {
		return nil, &ValidationError{Field: "shopId", Message: "must not be empty"}
	}
	return s.Repo.GetReviews(ctx, shopID)
}

// RecordView issues the atomic view-count increment. This is fire-and-forget:
// the increment commutes with concurrent increments so no transaction is
// needed, and a failure is never surfaced to the viewer or retried.
func (s *DefaultReviewService) RecordView(ctx context.Context, shopID string) {
	if err := s.Repo.IncrementViewCount(ctx, shopID); err != nil {
		utils.GetLogger().Warn("could not increment view count",
			zap.String("shopID", shopID), zap.Error(err))
	}
}
