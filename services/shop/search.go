package shop

import (
	"strings"

	"massagefinder/models"
)

// FilterShops runs the multi-keyword filter over the full listing. The query
// is trimmed, lowercased and split on whitespace; every keyword must match at
// least one searchable field of a shop for it to be kept (AND of ORs —
// different keywords may match different fields). The result preserves input
// order: this is a stable filter, not a ranking.
func FilterShops(allShops []models.Shop, query string) []models.Shop {
	cleaned := strings.ToLower(strings.TrimSpace(query))
	if cleaned == "" {
		return allShops
	}
	keywords := strings.Fields(cleaned)
	if len(keywords) == 0 {
		return allShops
	}

	filtered := []models.Shop{}
	for _, s := range allShops {
		if shopMatchesAll(&s, keywords) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func shopMatchesAll(s *models.Shop, keywords []string) bool {
	for _, kw := range keywords {
		if !shopMatchesKeyword(s, kw) {
			return false
		}
	}
	return true
}

// shopMatchesKeyword reports whether one keyword appears anywhere on the
// shop's searchable surface: name, description, address, any services-preview
// tag, or any detailed service's name or price.
func shopMatchesKeyword(s *models.Shop, keyword string) bool {
	if strings.Contains(strings.ToLower(s.Name), keyword) ||
		strings.Contains(strings.ToLower(s.Description), keyword) ||
		strings.Contains(strings.ToLower(s.Address), keyword) {
		return true
	}
	for _, sp := range s.ServicesPreview {
		if strings.Contains(strings.ToLower(sp), keyword) {
			return true
		}
	}
	for _, ds := range s.DetailedServices {
		if strings.Contains(strings.ToLower(ds.Name), keyword) ||
			strings.Contains(strings.ToLower(ds.Price), keyword) {
			return true
		}
	}
	return false
}
