package enums

import "fmt"

// SortKey selects the ordering applied to a filtered catalog view.
type SortKey string

const (
	SortKeyRelevance SortKey = "relevance"
	SortKeyPriceLow  SortKey = "price-low"
	SortKeyPriceHigh SortKey = "price-high"
	SortKeyRating    SortKey = "rating"
	SortKeyNewest    SortKey = "newest"
	SortKeyName      SortKey = "name"
)

var validSortKeys = []SortKey{
	SortKeyRelevance,
	SortKeyPriceLow,
	SortKeyPriceHigh,
	SortKeyRating,
	SortKeyNewest,
	SortKeyName,
}

// String implements fmt.Stringer.
func (s SortKey) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortKey.
func (s SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortKey converts raw input into a SortKey. Empty input falls back to
// relevance, the storefront default.
func ParseSortKey(value string) (SortKey, error) {
	if value == "" {
		return SortKeyRelevance, nil
	}
	for _, candidate := range validSortKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}
