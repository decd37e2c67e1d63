package models

import (
	"testing"

	"massagefinder/utils"

	"github.com/stretchr/testify/assert"
)

func TestApplyReview(t *testing.T) {
	tests := []struct {
		name        string
		rating      float64
		reviewCount int
		stars       int
		wantRating  float64
		wantCount   int
	}{
		{"first review", 0, 0, 4, 4.0, 1},
		{"second review averages", 4.0, 1, 2, 3.0, 2},
		{"rounds to one decimal", 4.0, 2, 5, 4.3, 3},
		{"five star stream stays at five", 5.0, 10, 5, 5.0, 11},
		{"one star floor", 1.0, 3, 1, 1.0, 4},
		{"recovers from corrupt negative aggregate", -2.0, 1, 5, 1.5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Shop{Rating: tt.rating, ReviewCount: tt.reviewCount}
			s.ApplyReview(tt.stars)
			assert.InDelta(t, tt.wantRating, s.Rating, 1e-9)
			assert.Equal(t, tt.wantCount, s.ReviewCount)
		})
	}
}

func TestApplyReviewStaysInBounds(t *testing.T) {
	s := Shop{}
	for i := 0; i < 100; i++ {
		s.ApplyReview(1 + i%5)
		assert.GreaterOrEqual(t, s.Rating, 0.0)
		assert.LessOrEqual(t, s.Rating, 5.0)
		assert.Equal(t, i+1, s.ReviewCount)
	}
}

func TestShopNormalizeFillsPlaceholders(t *testing.T) {
	s := Shop{}
	s.Normalize()

	assert.Equal(t, utils.PlaceholderName, s.Name)
	assert.Equal(t, utils.PlaceholderDescription, s.Description)
	assert.Equal(t, utils.PlaceholderAddress, s.Address)
	assert.Equal(t, utils.PlaceholderImageURL, s.ImageURL)
	assert.Equal(t, utils.PlaceholderPhoneNumber, s.PhoneNumber)
	assert.Equal(t, utils.PlaceholderOperatingHours, s.OperatingHours)
	assert.NotNil(t, s.ServicesPreview)
	assert.NotNil(t, s.DetailedServices)
}

func TestShopNormalizeKeepsRealValues(t *testing.T) {
	s := Shop{
		Name:        "Healing Hands",
		Description: "Deep tissue specialists",
		Address:     "12 Teheran-ro",
		Rating:      7.5,
		ReviewCount: -1,
		ViewCount:   -5,
		DetailedServices: []Service{
			{Name: "Foot", Price: "30000"},
			{Name: "", Price: ""},
			{Name: "Aroma", Price: ""},
		},
	}
	s.Normalize()

	assert.Equal(t, "Healing Hands", s.Name)
	assert.Equal(t, 5.0, s.Rating)
	assert.Equal(t, 0, s.ReviewCount)
	assert.Equal(t, int64(0), s.ViewCount)
	assert.Equal(t, []Service{{Name: "Foot", Price: "30000"}, {Name: "Aroma", Price: ""}}, s.DetailedServices)
}

func TestShopNormalizeLeavesSourceSliceIntact(t *testing.T) {
	src := []Service{
		{Name: "", Price: ""},
		{Name: "Foot", Price: "30000"},
	}
	s := Shop{Name: "n", Description: "d", Address: "a", DetailedServices: src}
	s.Normalize()

	assert.Equal(t, []Service{{Name: "Foot", Price: "30000"}}, s.DetailedServices)
	assert.Equal(t, []Service{{Name: "", Price: ""}, {Name: "Foot", Price: "30000"}}, src)
}

func TestReviewNormalize(t *testing.T) {
	r := Review{}
	r.Normalize()
	assert.Equal(t, utils.PlaceholderAuthorName, r.AuthorName)
	assert.Equal(t, 3, r.Rating)
	assert.False(t, r.CreatedAt.IsZero())

	high := Review{AuthorName: "jin", Rating: 9}
	high.Normalize()
	assert.Equal(t, "jin", high.AuthorName)
	assert.Equal(t, 5, high.Rating)
}
