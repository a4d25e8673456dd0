package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/techstore-mx/techstore-backend/pkg/enums"
)

// FilterState is the user-selected constraint set narrowing a category view.
// PriceRange is [low, high] inclusive; empty Brands/Specs disable those
// constraints; MinRating of 0 disables the rating floor.
type FilterState struct {
	PriceRange       [2]decimal.Decimal `json:"priceRange"`
	Brands           []string           `json:"brands"`
	Specs            []string           `json:"specs"`
	MinRating        float64            `json:"minRating"`
	AvailabilityOnly bool               `json:"availabilityOnly"`
	SortKey          enums.SortKey      `json:"sortBy"`
}

// Stats describes the catalog slice a filter panel is built from.
type Stats struct {
	Brands   []string        `json:"brands"`
	Specs    []string        `json:"specs"`
	MinPrice decimal.Decimal `json:"minPrice"`
	MaxPrice decimal.Decimal `json:"maxPrice"`
	Total    int             `json:"total"`
}

// DefaultFilters builds the reset state for a category: full price bounds,
// no brand or spec selection, relevance ordering.
func DefaultFilters(stats Stats) FilterState {
	return FilterState{
		PriceRange: [2]decimal.Decimal{stats.MinPrice, stats.MaxPrice},
		Brands:     []string{},
		Specs:      []string{},
		SortKey:    enums.SortKeyRelevance,
	}
}

// ActiveFilterCount reports how many constraints deviate from the defaults,
// counting each selected brand and spec individually.
func ActiveFilterCount(state FilterState, stats Stats, searchTerm string) int {
	count := len(state.Brands) + len(state.Specs)
	if state.MinRating > 0 {
		count++
	}
	if state.AvailabilityOnly {
		count++
	}
	if !state.PriceRange[0].Equal(stats.MinPrice) || !state.PriceRange[1].Equal(stats.MaxPrice) {
		count++
	}
	if searchTerm != "" {
		count++
	}
	return count
}
