package shop

import (
	"testing"

	"massagefinder/models"

	"github.com/stretchr/testify/assert"
)

func searchFixture() []models.Shop {
	return []models.Shop{
		{
			ID:              "1",
			Name:            "Gangnam Healing Spa",
			Description:     "Quiet aroma therapy rooms",
			Address:         "Seoul Gangnam-gu",
			ServicesPreview: []string{"aroma", "foot"},
			DetailedServices: []models.Service{
				{Name: "Aroma 60min", Price: "70000"},
			},
		},
		{
			ID:          "2",
			Name:        "Hongdae Thai Massage",
			Description: "Traditional thai stretching",
			Address:     "Seoul Mapo-gu",
			DetailedServices: []models.Service{
				{Name: "Thai 90min", Price: "90000"},
			},
		},
		{
			ID:          "3",
			Name:        "Busan Sports Clinic",
			Description: "Sports massage and spa",
			Address:     "Busan Haeundae-gu",
		},
	}
}

func TestFilterShops(t *testing.T) {
	shops := searchFixture()

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"empty query returns all", "", []string{"1", "2", "3"}},
		{"whitespace only returns all", "   \t ", []string{"1", "2", "3"}},
		{"single keyword on name", "gangnam", []string{"1"}},
		{"keyword is case insensitive", "GANGNAM", []string{"1"}},
		{"all keywords must match somewhere", "gangnam spa", []string{"1"}},
		{"keywords may hit different fields", "seoul thai", []string{"2"}},
		{"keyword on description", "sports", []string{"3"}},
		{"keyword on services preview", "foot", []string{"1"}},
		{"keyword on detailed service price", "90000", []string{"2"}},
		{"spa matches name and description", "spa", []string{"1", "3"}},
		{"no match yields empty", "jeju", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterShops(shops, tt.query)
			ids := make([]string, 0, len(got))
			for _, s := range got {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterShopsPreservesOrder(t *testing.T) {
	shops := searchFixture()
	got := FilterShops(shops, "seoul")
	assert.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}
