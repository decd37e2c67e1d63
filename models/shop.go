package models

import (
	"math"

	"massagefinder/utils"
)

// Service is a single priced offering on a shop's detailed service list.
type Service struct {
	Name  string `json:"name" firestore:"name"`
	Price string `json:"price" firestore:"price"`
}

// Shop represents a massage shop document stored under shops/{shopId}.
// Rating, ReviewCount and ViewCount are denormalized aggregates: Rating and
// ReviewCount are maintained transactionally by review submission, ViewCount
// by atomic increments.
type Shop struct {
	ID               string    `json:"id" firestore:"-"`
	Name             string    `json:"name" firestore:"name"`
	Description      string    `json:"description" firestore:"description"`
	ImageURL         string    `json:"imageUrl" firestore:"imageUrl"`
	Address          string    `json:"address" firestore:"address"`
	Rating           float64   `json:"rating" firestore:"rating"`
	ReviewCount      int       `json:"reviewCount" firestore:"reviewCount"`
	ViewCount        int64     `json:"viewCount" firestore:"viewCount"`
	ServicesPreview  []string  `json:"servicesPreview" firestore:"servicesPreview"`
	PhoneNumber      string    `json:"phoneNumber" firestore:"phoneNumber"`
	OperatingHours   string    `json:"operatingHours" firestore:"operatingHours"`
	DetailedServices []Service `json:"detailedServices" firestore:"detailedServices"`
	IsRecommended    bool      `json:"isRecommended" firestore:"isRecommended"`
}

// Normalize substitutes placeholder values for missing free-text fields and
// drops detailed-service entries that carry neither a name nor a price.
// Applied to every shop read before it leaves the repository layer.
func (s *Shop) Normalize() {
	if s.Name == "" {
		s.Name = utils.PlaceholderName
	}
	if s.Description == "" {
		s.Description = utils.PlaceholderDescription
	}
	if s.Address == "" {
		s.Address = utils.PlaceholderAddress
	}
	if s.ImageURL == "" {
		s.ImageURL = utils.PlaceholderImageURL
	}
	if s.PhoneNumber == "" {
		s.PhoneNumber = utils.PlaceholderPhoneNumber
	}
	if s.OperatingHours == "" {
		s.OperatingHours = utils.PlaceholderOperatingHours
	}
	if s.Rating < 0 {
		s.Rating = 0
	} else if s.Rating > 5 {
		s.Rating = 5
	}
	if s.ReviewCount < 0 {
		s.ReviewCount = 0
	}
	if s.ViewCount < 0 {
		s.ViewCount = 0
	}
	if s.ServicesPreview == nil {
		s.ServicesPreview = []string{}
	}
	// Compact into a fresh slice: shops read from the in-memory store are
	// shallow copies sharing the stored document's backing array, and an
	// in-place compaction would corrupt it.
	kept := make([]Service, 0, len(s.DetailedServices))
	for _, ds := range s.DetailedServices {
		if ds.Name != "" || ds.Price != "" {
			kept = append(kept, ds)
		}
	}
	s.DetailedServices = kept
}

// ApplyReview folds one new star rating into the shop's running aggregate:
// the mean over all reviews, rounded to one decimal and clamped to [0,5].
// Both Firestore and in-memory stores call this inside their transaction so
// the aggregate always reflects exactly the committed review set.
func (s *Shop) ApplyReview(stars int) {
	currentTotal := s.Rating * float64(s.ReviewCount)
	s.ReviewCount++
	avg := (currentTotal + float64(stars)) / float64(s.ReviewCount)
	avg = math.Round(avg*10) / 10
	s.Rating = math.Max(0, math.Min(5, avg))
}
