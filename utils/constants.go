// File: utils/constants.go
package utils

import "time"

// Placeholder values substituted for missing shop fields at read time.
// The listing UI renders these literally, so they must stay stable.
const (
	PlaceholderName           = "이름 없음"
	PlaceholderDescription    = "설명 없음"
	PlaceholderAddress        = "주소 없음"
	PlaceholderPhoneNumber    = "연락처 없음"
	PlaceholderOperatingHours = "운영 시간 정보 없음"
	PlaceholderImageURL       = "https://picsum.photos/seed/placeholder/600/400"

	// Default shown when a review document carries no author name.
	PlaceholderAuthorName = "익명"
)

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// ListingCacheKey is the Redis key holding the cached full shop listing.
const ListingCacheKey = "shops:listing"
