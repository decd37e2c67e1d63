package models

import (
	"time"

	"massagefinder/utils"
)

// Review is a review document stored under shops/{shopId}/reviews/{reviewId}.
// Reviews are created only through the review submission transaction and are
// never mutated afterwards.
type Review struct {
	ID         string    `json:"id" firestore:"-"`
	ShopID     string    `json:"shopId" firestore:"shopId"`
	AuthorName string    `json:"authorName" firestore:"authorName"`
	Rating     int       `json:"rating" firestore:"rating"`
	Comment    string    `json:"comment" firestore:"comment"`
	CreatedAt  time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

// Normalize applies read-time defaults for review documents written by older
// clients: anonymous author, rating clamped to [1,5] with a midpoint default.
func (r *Review) Normalize() {
	if r.AuthorName == "" {
		r.AuthorName = utils.PlaceholderAuthorName
	}
	if r.Rating == 0 {
		r.Rating = 3
	} else if r.Rating < 1 {
		r.Rating = 1
	} else if r.Rating > 5 {
		r.Rating = 5
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
}

// ReviewResult is returned by a successful review submission.
type ReviewResult struct {
	ReviewID         string  `json:"reviewId"`
	NewAverageRating float64 `json:"newAverageRating"`
	NewReviewCount   int     `json:"newReviewCount"`
}
